package domain

import "time"

// EventType tags the kind of a broadcast event.
type EventType string

const (
	EventTypeLog      EventType = "log"
	EventTypeStats    EventType = "stats"
	EventTypeComplete EventType = "complete"
)

// StatsSnapshot is a point-in-time copy of a job's counters. Snapshots are
// periodic samples, not emitted on every counter change, and may be coalesced
// before delivery.
type StatsSnapshot struct {
	JobID             string    `json:"job_id"`
	Status            JobStatus `json:"status"`
	ProcessedCount    int       `json:"processed_count"`
	QualifiedCount    int       `json:"qualified_count"`
	DuplicatesSkipped int       `json:"duplicates_skipped"`
	ActiveWorkers     int       `json:"active_workers"`
	TotalWorkers      int       `json:"total_workers"`
	TargetQuantity    int       `json:"target_quantity"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event is the tagged union delivered to job stream subscribers. Exactly one
// of Log and Stats is set depending on Type; complete events carry only the
// job identity and a final snapshot.
type Event struct {
	Type  EventType      `json:"type"`
	JobID string         `json:"job_id"`
	Log   *JobLog        `json:"log,omitempty"`
	Stats *StatsSnapshot `json:"stats,omitempty"`
}
