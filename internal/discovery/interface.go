package discovery

import (
	"context"

	"github.com/marvinh/leadscout/internal/domain"
)

// ProgressFunc receives human-readable progress text during discovery.
type ProgressFunc func(message string)

// Discoverer finds candidate profiles on a single platform. Implementations
// are invoked once per concrete platform per job; quantity splitting for
// multi-platform jobs happens in the caller.
type Discoverer interface {
	// Discover returns up to quantity candidates matching the keywords.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	//   - platform: concrete platform to search (never "both").
	//   - keywords: query/keyword set from the job spec.
	//   - quantity: maximum number of candidates to return.
	//   - progress: optional callback for progress text; may be nil.
	// Returns:
	//   - []domain.Candidate: discovered candidates.
	//   - err: non-nil if discovery fails; fatal to the job.
	Discover(ctx context.Context, platform domain.Platform, keywords []string, quantity int, progress ProgressFunc) ([]domain.Candidate, error)
}
