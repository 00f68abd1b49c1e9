package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/marvinh/leadscout/internal/domain"
)

// Fingerprint derives the deterministic dedupe identity of a candidate from
// its lowercased email (or empty), platform, and lowercased username. Two
// candidates with the same fingerprint are treated as the same real-world
// entity.
// Parameters:
//   - c: candidate to fingerprint.
// Returns:
//   - string: hex-encoded digest used as the dedupe key.
func Fingerprint(c *domain.Candidate) string {
	key := strings.ToLower(c.Email) + "|" + string(c.Platform) + "|" + strings.ToLower(c.Username)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
