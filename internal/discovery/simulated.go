package discovery

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/marvinh/leadscout/internal/domain"
)

// Simulated is an offline discoverer that generates a deterministic candidate
// stream from a seed. The same (seed, platform, keywords, quantity) always
// yields the same candidates, which keeps local runs and tests reproducible.
// Roughly one in ten candidates repeats an earlier profile so the dedupe path
// gets exercised end to end.
type Simulated struct {
	seed int64
}

// NewSimulated creates a simulated discoverer.
// Parameters:
//   - seed: base seed mixed with the platform and keywords per call.
// Returns:
//   - *Simulated: initialized discoverer.
func NewSimulated(seed int64) *Simulated {
	return &Simulated{seed: seed}
}

var (
	nameSuffixes = []string{"official", "hq", "studio", "co", "daily", "pro", "team", "club", "lab", "world"}
	firstNames   = []string{"Alex", "Jordan", "Sam", "Riley", "Casey", "Morgan", "Taylor", "Jamie", "Quinn", "Drew"}
	lastNames    = []string{"Nguyen", "Garcia", "Smith", "Chen", "Patel", "Kim", "Muller", "Rossi", "Silva", "Novak"}
	titles       = []string{"Founder", "CEO", "Marketing Lead", "Creative Director", "Owner", "Growth Manager", "Consultant", "Coach"}
	bioTemplates = []string{
		"Helping brands grow with %s. DM for collabs.",
		"All things %s. Sharing tips and behind the scenes.",
		"%s enthusiast | building something new",
		"Agency for %s and digital growth.",
		"Just here for the %s content.",
	}
)

// Discover generates candidates deterministically from the seed.
func (s *Simulated) Discover(ctx context.Context, platform domain.Platform, keywords []string, quantity int, progress ProgressFunc) ([]domain.Candidate, error) {
	if quantity <= 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(s.mixSeed(platform, keywords)))
	keyword := "business"
	if len(keywords) > 0 {
		keyword = strings.ToLower(keywords[0])
	}
	kwSlug := strings.ReplaceAll(keyword, " ", "")

	report := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}
	report(fmt.Sprintf("searching %s for %q", platform, strings.Join(keywords, ", ")))

	candidates := make([]domain.Candidate, 0, quantity)
	for i := 0; i < quantity; i++ {
		if err := ctx.Err(); err != nil {
			return candidates, err
		}

		// Every tenth candidate repeats an earlier one.
		if i > 0 && i%10 == 9 {
			candidates = append(candidates, candidates[rng.Intn(len(candidates))])
			continue
		}

		username := fmt.Sprintf("%s_%s_%d", kwSlug, nameSuffixes[rng.Intn(len(nameSuffixes))], rng.Intn(10000))
		fullName := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]

		c := domain.Candidate{
			Platform:      platform,
			Username:      username,
			ProfileURL:    profileURL(platform, username),
			FollowerCount: followerCount(rng),
			Bio:           fmt.Sprintf(bioTemplates[rng.Intn(len(bioTemplates))], keyword),
			FullName:      fullName,
		}
		if rng.Float64() < 0.6 {
			c.Email = strings.ToLower(strings.ReplaceAll(fullName, " ", ".")) + "@example.com"
		}
		if platform == domain.PlatformLinkedIn || rng.Float64() < 0.3 {
			c.Title = titles[rng.Intn(len(titles))]
			c.Company = capitalize(keyword) + " " + nameSuffixes[rng.Intn(len(nameSuffixes))]
		}
		candidates = append(candidates, c)

		if (i+1)%25 == 0 {
			report(fmt.Sprintf("found %d/%d candidates on %s", i+1, quantity, platform))
		}
	}

	report(fmt.Sprintf("discovery finished: %d candidates on %s", len(candidates), platform))
	return candidates, nil
}

// followerCount samples a long-tailed follower distribution. A small share of
// profiles falls outside any sensible admissible range on purpose.
func followerCount(rng *rand.Rand) int {
	switch v := rng.Float64(); {
	case v < 0.08:
		return rng.Intn(100) // below typical floors
	case v < 0.85:
		return 100 + rng.Intn(50000)
	case v < 0.97:
		return 50000 + rng.Intn(450000)
	default:
		return 500000 + rng.Intn(5000000) // celebrity scale
	}
}

func profileURL(platform domain.Platform, username string) string {
	if platform == domain.PlatformLinkedIn {
		return "https://www.linkedin.com/in/" + username
	}
	return "https://www.instagram.com/" + username
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// mixSeed folds the platform and keywords into the base seed so different
// queries get different, but stable, streams.
func (s *Simulated) mixSeed(platform domain.Platform, keywords []string) int64 {
	h := fnv.New64a()
	h.Write([]byte(platform))
	for _, kw := range keywords {
		h.Write([]byte(strings.ToLower(kw)))
	}
	return s.seed ^ int64(h.Sum64())
}
