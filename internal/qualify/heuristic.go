package qualify

import (
	"context"
	"fmt"
	"strings"

	"github.com/marvinh/leadscout/internal/domain"
)

// Heuristic is the deterministic local fallback used when the AI qualifier
// faults. It scores on keyword overlap, title signals, and follower count.
type Heuristic struct {
	scoreFloor float64
}

// NewHeuristic creates a heuristic qualifier.
// Parameters:
//   - scoreFloor: minimum relevance score for qualification.
// Returns:
//   - *Heuristic: initialized qualifier.
func NewHeuristic(scoreFloor float64) *Heuristic {
	return &Heuristic{scoreFloor: scoreFloor}
}

// businessTitleWords are title tokens that indicate a decision maker.
var businessTitleWords = []string{
	"founder", "ceo", "owner", "director", "manager", "consultant", "coach", "lead",
}

// excludedBioMarkers mark profile categories that are never qualified.
var excludedBioMarkers = []string{
	"fan page", "fanpage", "parody", "meme", "not affiliated",
}

// Qualify scores a candidate without any external call. It never returns an
// error.
// Parameters:
//   - ctx: unused; present to satisfy the Qualifier interface.
//   - candidate: profile to score.
//   - offering: what the user is selling.
// Returns:
//   - *Qualification: deterministic scoring outcome.
//   - error: always nil.
func (h *Heuristic) Qualify(ctx context.Context, candidate *domain.Candidate, offering string) (*Qualification, error) {
	bio := strings.ToLower(candidate.Bio)
	title := strings.ToLower(candidate.Title)
	company := strings.ToLower(candidate.Company)

	for _, marker := range excludedBioMarkers {
		if strings.Contains(bio, marker) {
			return &Qualification{
				IsQualified:    false,
				RelevanceScore: 0,
				BusinessType:   "excluded",
				Summary:        fmt.Sprintf("excluded category: bio contains %q", marker),
			}, nil
		}
	}

	var score float64

	offeringWords := significantWords(offering)
	matched := 0
	for _, w := range offeringWords {
		if strings.Contains(bio, w) || strings.Contains(company, w) {
			matched++
		}
	}
	if len(offeringWords) > 0 {
		score += 0.4 * float64(matched) / float64(len(offeringWords))
	}

	hasBusinessTitle := false
	for _, w := range businessTitleWords {
		if strings.Contains(title, w) {
			hasBusinessTitle = true
			break
		}
	}
	if hasBusinessTitle {
		score += 0.25
	}

	if candidate.Email != "" {
		score += 0.1
	}

	switch f := candidate.FollowerCount; {
	case f >= 1000 && f <= 100000:
		score += 0.25 // engaged mid-size audience, the sweet spot
	case f > 100000:
		score += 0.1
	case f >= 100:
		score += 0.05
	}

	if score > 1 {
		score = 1
	}

	businessType := classify(bio, title, company, hasBusinessTitle)
	qualified := score >= h.scoreFloor

	summary := fmt.Sprintf("heuristic: %d/%d offering keywords matched, %d followers",
		matched, len(offeringWords), candidate.FollowerCount)

	return &Qualification{
		IsQualified:    qualified,
		RelevanceScore: score,
		BusinessType:   businessType,
		Summary:        summary,
	}, nil
}

func classify(bio, title, company string, hasBusinessTitle bool) string {
	switch {
	case strings.Contains(bio, "agency") || strings.Contains(company, "agency"):
		return "agency"
	case strings.Contains(bio, "shop") || strings.Contains(bio, "store") || strings.Contains(bio, "brand"):
		return "local business"
	case hasBusinessTitle || company != "":
		return "business"
	case strings.Contains(bio, "creator") || strings.Contains(bio, "content"):
		return "creator"
	default:
		return "personal"
	}
}

// significantWords lowercases and filters the offering down to tokens worth
// matching against a bio.
func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,!?:;\"'()")
		if len(w) >= 4 {
			out = append(out, w)
		}
	}
	return out
}
