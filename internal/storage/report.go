package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marvinh/leadscout/internal/domain"
)

// LeadLister provides the leads included in a job report.
type LeadLister interface {
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Lead, error)
}

// ReportArchiver writes a JSON report for each terminal job to object
// storage. Archival is best effort; the job outcome never depends on it.
type ReportArchiver struct {
	store ObjectStorage
	leads LeadLister
}

// NewReportArchiver creates a report archiver backed by the given storage.
func NewReportArchiver(store ObjectStorage, leads LeadLister) *ReportArchiver {
	return &ReportArchiver{store: store, leads: leads}
}

// jobReport is the archived document layout.
type jobReport struct {
	Job        *domain.Job           `json:"job"`
	Final      *domain.StatsSnapshot `json:"final_stats"`
	Leads      []domain.Lead         `json:"leads"`
	ArchivedAt time.Time             `json:"archived_at"`
}

// Archive uploads the job report and returns its URL.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - job: terminal job record.
//   - final: final counter snapshot.
// Returns:
//   - string: URL of the uploaded report.
//   - error: non-nil when listing leads or uploading fails.
func (a *ReportArchiver) Archive(ctx context.Context, job *domain.Job, final *domain.StatsSnapshot) (string, error) {
	leads, err := a.leads.ListByJob(ctx, job.ID, 0, 0)
	if err != nil {
		return "", fmt.Errorf("failed to list leads for report: %w", err)
	}

	report := jobReport{
		Job:        job,
		Final:      final,
		Leads:      leads,
		ArchivedAt: time.Now(),
	}
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := fmt.Sprintf("reports/%s.json", job.ID)
	if err := a.store.Upload(ctx, key, bytes.NewReader(payload), int64(len(payload)), "application/json"); err != nil {
		return "", err
	}
	return a.store.GetURL(key), nil
}
