package qualify

import (
	"context"

	"github.com/marvinh/leadscout/internal/domain"
)

// Qualification is the outcome of scoring a candidate against an offering.
type Qualification struct {
	IsQualified    bool    `json:"is_qualified"`
	RelevanceScore float64 `json:"relevance_score"`
	BusinessType   string  `json:"business_type"`
	Summary        string  `json:"summary"`
}

// Qualifier scores a candidate against an offering description. A failed
// qualifier never fails a candidate: callers substitute the local heuristic
// when Qualify returns an error.
type Qualifier interface {
	Qualify(ctx context.Context, candidate *domain.Candidate, offering string) (*Qualification, error)
}
