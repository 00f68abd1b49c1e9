package domain

import "time"

// JobStatus represents the lifecycle state of a scout job.
// Transitions are monotonic: queued -> running -> completed/failed, with
// cancellation allowed from queued or running. No backward transitions.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether the status is a terminal state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// Platform identifies a discovery platform target.
// PlatformBoth splits discovery across Instagram and LinkedIn.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformBoth      Platform = "both"
)

// Valid reports whether the platform is one of the accepted values.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformLinkedIn, PlatformBoth:
		return true
	}
	return false
}

// Job represents one user-initiated discovery and qualification run.
type Job struct {
	ID                string      `gorm:"type:text;primaryKey" json:"id"`
	Platform          Platform    `gorm:"type:text;not null;index" json:"platform"`
	Keywords          StringArray `gorm:"type:text" json:"keywords"`
	Offering          string      `gorm:"type:text;not null" json:"offering"`
	TargetQuantity    int         `gorm:"not null" json:"target_quantity"`
	Status            JobStatus   `gorm:"type:text;index;default:queued" json:"status"`
	ProcessedCount    int         `gorm:"default:0" json:"processed_count"`
	QualifiedCount    int         `gorm:"default:0" json:"qualified_count"`
	DuplicatesSkipped int         `gorm:"default:0" json:"duplicates_skipped"`
	ActiveWorkers     int         `gorm:"default:0" json:"active_workers"`
	TotalWorkers      int         `gorm:"default:0" json:"total_workers"`
	ErrorMessage      string      `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt         *time.Time  `json:"started_at,omitempty"`
	CompletedAt       *time.Time  `json:"completed_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Job.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Job) TableName() string {
	return "jobs"
}
