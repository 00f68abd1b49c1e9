package domain

import "time"

// Candidate is a raw discovered profile before qualification. Candidates are
// ephemeral: each one is consumed by exactly one processing task and is never
// persisted directly.
type Candidate struct {
	Platform      Platform `json:"platform"`
	Username      string   `json:"username"`
	ProfileURL    string   `json:"profile_url"`
	FollowerCount int      `json:"follower_count"`
	Bio           string   `json:"bio"`
	Email         string   `json:"email,omitempty"`
	FullName      string   `json:"full_name,omitempty"`
	Title         string   `json:"title,omitempty"`
	Company       string   `json:"company,omitempty"`
}

// Lead is a persisted candidate that passed deduplication. The fingerprint
// carries a unique index; the database constraint is the final arbiter when
// concurrent tasks race to insert the same profile.
type Lead struct {
	ID             string    `gorm:"type:text;primaryKey" json:"id"`
	JobID          string    `gorm:"type:text;not null;index" json:"job_id"`
	Fingerprint    string    `gorm:"type:text;not null;uniqueIndex:idx_leads_fingerprint" json:"fingerprint"`
	Platform       Platform  `gorm:"type:text;not null;index" json:"platform"`
	Username       string    `gorm:"type:text;not null" json:"username"`
	ProfileURL     string    `gorm:"type:text" json:"profile_url"`
	FollowerCount  int       `json:"follower_count"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Email          string    `gorm:"type:text" json:"email,omitempty"`
	FullName       string    `gorm:"type:text" json:"full_name,omitempty"`
	Title          string    `gorm:"type:text" json:"title,omitempty"`
	Company        string    `gorm:"type:text" json:"company,omitempty"`
	IsQualified    bool      `gorm:"default:false" json:"is_qualified"`
	RelevanceScore float64   `gorm:"default:0" json:"relevance_score"`
	BusinessType   string    `gorm:"type:text" json:"business_type,omitempty"`
	Summary        string    `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the database table name for Lead.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Lead) TableName() string {
	return "leads"
}
