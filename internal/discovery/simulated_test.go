package discovery

import (
	"context"
	"testing"

	"github.com/marvinh/leadscout/internal/domain"
)

func TestSimulatedDeterministic(t *testing.T) {
	ctx := context.Background()
	keywords := []string{"coffee", "roastery"}

	a, err := NewSimulated(42).Discover(ctx, domain.PlatformInstagram, keywords, 50, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	b, err := NewSimulated(42).Discover(ctx, domain.PlatformInstagram, keywords, 50, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("Length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Candidate %d differs between identical runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulatedSeedAndPlatformVaryStream(t *testing.T) {
	ctx := context.Background()
	keywords := []string{"coffee"}

	base, _ := NewSimulated(1).Discover(ctx, domain.PlatformInstagram, keywords, 20, nil)
	otherSeed, _ := NewSimulated(2).Discover(ctx, domain.PlatformInstagram, keywords, 20, nil)
	otherPlatform, _ := NewSimulated(1).Discover(ctx, domain.PlatformLinkedIn, keywords, 20, nil)

	if base[0].Username == otherSeed[0].Username {
		t.Error("Different seeds produced the same first candidate")
	}
	if base[0].Username == otherPlatform[0].Username {
		t.Error("Different platforms produced the same first candidate")
	}
}

func TestSimulatedQuantityAndShape(t *testing.T) {
	ctx := context.Background()

	candidates, err := NewSimulated(7).Discover(ctx, domain.PlatformLinkedIn, []string{"fitness"}, 35, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(candidates) != 35 {
		t.Fatalf("Got %d candidates, want 35", len(candidates))
	}

	for i, c := range candidates {
		if c.Platform != domain.PlatformLinkedIn {
			t.Errorf("Candidate %d has platform %s", i, c.Platform)
		}
		if c.Username == "" || c.ProfileURL == "" {
			t.Errorf("Candidate %d missing identity fields: %+v", i, c)
		}
		// LinkedIn candidates always carry a title.
		if c.Title == "" {
			t.Errorf("Candidate %d missing title on linkedin", i)
		}
	}
}

// TestSimulatedEmitsDuplicates verifies the stream repeats profiles so the
// dedupe path gets real work.
func TestSimulatedEmitsDuplicates(t *testing.T) {
	candidates, err := NewSimulated(3).Discover(context.Background(), domain.PlatformInstagram, []string{"yoga"}, 100, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	seen := make(map[string]int)
	for _, c := range candidates {
		seen[c.Username]++
	}
	dupes := len(candidates) - len(seen)
	if dupes == 0 {
		t.Error("Expected repeated profiles in a 100-candidate stream")
	}
}

func TestSimulatedCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulated(1).Discover(ctx, domain.PlatformInstagram, []string{"coffee"}, 50, nil)
	if err == nil {
		t.Error("Discover should observe a cancelled context")
	}
}

func TestSimulatedReportsProgress(t *testing.T) {
	var messages []string
	progress := func(msg string) { messages = append(messages, msg) }

	_, err := NewSimulated(5).Discover(context.Background(), domain.PlatformInstagram, []string{"coffee"}, 50, progress)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(messages) < 3 {
		t.Errorf("Expected start, interim, and final progress messages, got %d", len(messages))
	}
}
