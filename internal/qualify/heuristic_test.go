package qualify

import (
	"context"
	"testing"

	"github.com/marvinh/leadscout/internal/domain"
)

func TestHeuristicExcludedCategories(t *testing.T) {
	h := NewHeuristic(0.4)

	testCases := []struct {
		name string
		bio  string
	}{
		{name: "fan page", bio: "Biggest fan page for coffee lovers"},
		{name: "parody", bio: "parody account, all in good fun"},
		{name: "meme account", bio: "daily meme drops"},
		{name: "unaffiliated", bio: "not affiliated with any brand"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := h.Qualify(context.Background(), &domain.Candidate{
				Bio:           tc.bio,
				FollowerCount: 5000,
				Email:         "x@example.com",
			}, "coffee roasting equipment")
			if err != nil {
				t.Fatalf("Qualify failed: %v", err)
			}
			if q.IsQualified {
				t.Error("Excluded category must not qualify")
			}
			if q.BusinessType != "excluded" {
				t.Errorf("BusinessType = %q, want excluded", q.BusinessType)
			}
			if q.RelevanceScore != 0 {
				t.Errorf("RelevanceScore = %v, want 0", q.RelevanceScore)
			}
		})
	}
}

func TestHeuristicStrongCandidateQualifies(t *testing.T) {
	h := NewHeuristic(0.4)

	q, err := h.Qualify(context.Background(), &domain.Candidate{
		Bio:           "Specialty coffee roasting studio. Wholesale and equipment.",
		Title:         "Founder",
		Company:       "Roast Lab",
		Email:         "hello@roastlab.example.com",
		FollowerCount: 12000,
	}, "coffee roasting equipment")
	if err != nil {
		t.Fatalf("Qualify failed: %v", err)
	}

	if !q.IsQualified {
		t.Errorf("Strong candidate should qualify, score=%v", q.RelevanceScore)
	}
	if q.RelevanceScore < 0.4 {
		t.Errorf("RelevanceScore = %v, want >= 0.4", q.RelevanceScore)
	}
}

func TestHeuristicWeakCandidateRejected(t *testing.T) {
	h := NewHeuristic(0.4)

	q, err := h.Qualify(context.Background(), &domain.Candidate{
		Bio:           "Just posting my travels",
		FollowerCount: 150,
	}, "coffee roasting equipment")
	if err != nil {
		t.Fatalf("Qualify failed: %v", err)
	}
	if q.IsQualified {
		t.Errorf("Weak candidate should not qualify, score=%v", q.RelevanceScore)
	}
}

func TestHeuristicDeterministic(t *testing.T) {
	h := NewHeuristic(0.4)
	c := &domain.Candidate{
		Bio:           "Agency for coffee brands",
		Title:         "CEO",
		FollowerCount: 8000,
	}

	first, err := h.Qualify(context.Background(), c, "coffee marketing")
	if err != nil {
		t.Fatalf("Qualify failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := h.Qualify(context.Background(), c, "coffee marketing")
		if err != nil {
			t.Fatalf("Qualify failed: %v", err)
		}
		if again.RelevanceScore != first.RelevanceScore || again.IsQualified != first.IsQualified {
			t.Errorf("Heuristic not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestHeuristicScoreBounded(t *testing.T) {
	// Stack every positive signal; the score must stay within [0, 1].
	h := NewHeuristic(0.4)
	q, err := h.Qualify(context.Background(), &domain.Candidate{
		Bio:           "coffee roasting equipment studio, coffee equipment wholesale",
		Title:         "Founder and CEO",
		Company:       "Coffee Equipment Co",
		Email:         "x@example.com",
		FollowerCount: 50000,
	}, "coffee equipment")
	if err != nil {
		t.Fatalf("Qualify failed: %v", err)
	}
	if q.RelevanceScore < 0 || q.RelevanceScore > 1 {
		t.Errorf("RelevanceScore = %v, want within [0, 1]", q.RelevanceScore)
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name             string
		bio, title, co   string
		hasBusinessTitle bool
		want             string
	}{
		{name: "agency bio", bio: "growth agency", want: "agency"},
		{name: "shop bio", bio: "online store for plants", want: "local business"},
		{name: "business title", title: "founder", hasBusinessTitle: true, want: "business"},
		{name: "company only", co: "acme", want: "business"},
		{name: "creator", bio: "content creator", want: "creator"},
		{name: "personal", bio: "living my best life", want: "personal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.bio, tc.title, tc.co, tc.hasBusinessTitle)
			if got != tc.want {
				t.Errorf("classify() = %q, want %q", got, tc.want)
			}
		})
	}
}
