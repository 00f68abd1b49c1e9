package domain

import "time"

// LogLevel is the severity of a job log entry.
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelSuccess LogLevel = "success"
)

// JobLog is an immutable, append-only event tied to a job. Worker is the
// ordinal of the pool slot that produced the entry, or 0 for job-level lines.
type JobLog struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	JobID     string    `gorm:"type:text;not null;index:idx_job_logs_job" json:"job_id"`
	Worker    int       `gorm:"default:0" json:"worker,omitempty"`
	Level     LogLevel  `gorm:"type:text;not null" json:"level"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Data      JSONMap   `gorm:"type:text" json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for JobLog.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (JobLog) TableName() string {
	return "job_logs"
}
