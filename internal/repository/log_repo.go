package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marvinh/leadscout/internal/domain"
	"gorm.io/gorm"
)

// LogRepository handles append-only job log storage.
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *LogRepository: repository instance bound to db.
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Append persists a log entry, assigning its ID and timestamp if unset.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - entry: log entry to persist.
// Returns:
//   - *domain.JobLog: the stored entry.
//   - error: non-nil if the insert fails.
func (r *LogRepository) Append(ctx context.Context, entry *domain.JobLog) (*domain.JobLog, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByJob retrieves the most recent log entries for a job in emission order.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - limit: cap on the number of most recent entries; 0 means all.
// Returns:
//   - []domain.JobLog: matching entries, oldest first.
//   - error: non-nil if the query fails.
func (r *LogRepository) ListByJob(ctx context.Context, jobID string, limit int) ([]domain.JobLog, error) {
	var logs []domain.JobLog
	query := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	// Reverse into emission order
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}
