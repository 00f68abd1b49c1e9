package repository

import (
	"context"

	"github.com/marvinh/leadscout/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadRepository handles lead persistence.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new LeadRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *LeadRepository: repository instance bound to db.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// InsertIfAbsent inserts a lead unless one with the same fingerprint exists.
// The unique index on fingerprint is authoritative: when two tasks race, the
// database admits exactly one insert and the loser observes a nil lead.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - lead: lead record to persist.
// Returns:
//   - *domain.Lead: the inserted lead, or nil on dedupe rejection.
//   - error: non-nil only for faults other than a fingerprint conflict.
func (r *LeadRepository) InsertIfAbsent(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fingerprint"}},
		DoNothing: true,
	}).Create(lead)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return lead, nil
}

// ExistsByFingerprint checks if a lead with the given fingerprint exists.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - fingerprint: dedupe fingerprint.
// Returns:
//   - bool: true if a record exists.
//   - error: non-nil if the lookup fails.
func (r *LeadRepository) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("fingerprint = ?", fingerprint).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByJob retrieves leads produced by a job, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - limit: maximum number of records to return; 0 means no limit.
//   - offset: number of records to skip.
// Returns:
//   - []domain.Lead: matching lead records.
//   - error: non-nil if the query fails.
func (r *LeadRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Lead, error) {
	var leads []domain.Lead
	query := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// CountByJob counts leads produced by a job.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
// Returns:
//   - int64: number of matching records.
//   - error: non-nil if the query fails.
func (r *LeadRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count counts all leads.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: total number of lead records.
//   - error: non-nil if the query fails.
func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Lead{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
