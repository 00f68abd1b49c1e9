package repository

import (
	"context"
	"time"

	"github.com/marvinh/leadscout/internal/domain"
	"gorm.io/gorm"
)

// JobRepository handles job record operations.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *JobRepository: repository instance bound to db.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - job: job record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a job by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
// Returns:
//   - *domain.Job: job record if found.
//   - error: non-nil if lookup fails.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs ordered by creation time, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - limit: maximum number of records to return; 0 means no limit.
//   - offset: number of records to skip.
// Returns:
//   - []domain.Job: matching job records.
//   - error: non-nil if the query fails.
func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	var jobs []domain.Job
	query := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus transitions a job's status without marking it finished. A
// cancellation request lands here while admitted tasks are still draining,
// so completed_at stays unset until Finish.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
//   - status: new status value.
//   - errorMessage: failure description; empty for non-failed transitions.
// Returns:
//   - error: non-nil if the update fails.
func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}
	if status == domain.JobStatusRunning {
		updates["started_at"] = time.Now()
	}
	return r.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", id).Updates(updates).Error
}

// Finish records a job's terminal status and stamps completed_at.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
//   - status: terminal status value.
//   - errorMessage: failure description; empty for non-failed outcomes.
// Returns:
//   - error: non-nil if the update fails.
func (r *JobRepository) Finish(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error {
	updates := map[string]interface{}{
		"status":       status,
		"completed_at": time.Now(),
		"updated_at":   time.Now(),
	}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}
	return r.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateCounters persists a job's counter snapshot.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
//   - snapshot: counter values to write.
// Returns:
//   - error: non-nil if the update fails.
func (r *JobRepository) UpdateCounters(ctx context.Context, id string, snapshot *domain.StatsSnapshot) error {
	return r.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"processed_count":    snapshot.ProcessedCount,
		"qualified_count":    snapshot.QualifiedCount,
		"duplicates_skipped": snapshot.DuplicatesSkipped,
		"active_workers":     snapshot.ActiveWorkers,
		"updated_at":         time.Now(),
	}).Error
}

// CountByStatus counts jobs in a given status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - status: job status to count.
// Returns:
//   - int64: number of matching records.
//   - error: non-nil if the query fails.
func (r *JobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Job{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
