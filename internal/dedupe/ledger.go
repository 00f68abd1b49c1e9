package dedupe

import (
	"context"
	"fmt"
	"sync"

	"github.com/marvinh/leadscout/internal/domain"
)

// LeadWriter is the storage boundary the ledger admits leads through. A nil
// lead with a nil error from InsertIfAbsent signals a fingerprint conflict,
// not a fault.
type LeadWriter interface {
	InsertIfAbsent(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)
}

// Ledger guarantees a fingerprint is admitted at most once, no matter how
// many concurrent tasks race to admit it. An in-memory reservation settles
// races between live tasks; the store's unique index on fingerprint remains
// authoritative across restarts and is treated as a rejection, never a fault.
type Ledger struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	store LeadWriter
}

// NewLedger creates a Ledger backed by the given store.
// Parameters:
//   - store: lead storage boundary enforcing fingerprint uniqueness.
// Returns:
//   - *Ledger: initialized ledger.
func NewLedger(store LeadWriter) *Ledger {
	return &Ledger{
		seen:  make(map[string]struct{}),
		store: store,
	}
}

// IsAdmitted reports whether the fingerprint has already been admitted.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - fingerprint: dedupe key to check.
// Returns:
//   - bool: true when the fingerprint is already reserved or persisted.
//   - error: non-nil if the storage lookup fails.
func (l *Ledger) IsAdmitted(ctx context.Context, fingerprint string) (bool, error) {
	l.mu.Lock()
	_, ok := l.seen[fingerprint]
	l.mu.Unlock()
	if ok {
		return true, nil
	}
	return l.store.ExistsByFingerprint(ctx, fingerprint)
}

// TryAdmit atomically reserves the fingerprint and persists the lead only if
// the reservation succeeds. Exactly one of any set of racing callers is
// admitted; the rest observe admitted=false with a nil error.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - fingerprint: dedupe key to reserve.
//   - lead: lead payload to persist on successful reservation.
// Returns:
//   - bool: true when this caller won the reservation and the insert landed.
//   - error: non-nil for storage faults other than a fingerprint conflict.
func (l *Ledger) TryAdmit(ctx context.Context, fingerprint string, lead *domain.Lead) (bool, error) {
	l.mu.Lock()
	if _, ok := l.seen[fingerprint]; ok {
		l.mu.Unlock()
		return false, nil
	}
	l.seen[fingerprint] = struct{}{}
	l.mu.Unlock()

	lead.Fingerprint = fingerprint
	inserted, err := l.store.InsertIfAbsent(ctx, lead)
	if err != nil {
		// Release the reservation so a later candidate can retry the insert.
		l.mu.Lock()
		delete(l.seen, fingerprint)
		l.mu.Unlock()
		return false, fmt.Errorf("failed to persist lead: %w", err)
	}
	if inserted == nil {
		// The unique index rejected the insert. Keep the reservation: the
		// fingerprint is admitted, just not by us.
		return false, nil
	}
	return true, nil
}
