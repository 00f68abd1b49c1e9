package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/marvinh/leadscout/internal/dedupe"
	"github.com/marvinh/leadscout/internal/discovery"
	"github.com/marvinh/leadscout/internal/domain"
	"github.com/marvinh/leadscout/internal/logger"
	"github.com/marvinh/leadscout/internal/qualify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ---- fakes ----

type memJobStore struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: make(map[string]*domain.Job)}
}

func (m *memJobStore) Create(ctx context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *memJobStore) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memJobStore) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Job
	for _, j := range m.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (m *memJobStore) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	job.Status = status
	if errorMessage != "" {
		job.ErrorMessage = errorMessage
	}
	if status == domain.JobStatusRunning {
		now := time.Now()
		job.StartedAt = &now
	}
	return nil
}

func (m *memJobStore) Finish(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	job.Status = status
	if errorMessage != "" {
		job.ErrorMessage = errorMessage
	}
	now := time.Now()
	job.CompletedAt = &now
	return nil
}

func (m *memJobStore) UpdateCounters(ctx context.Context, id string, snap *domain.StatsSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	job.ProcessedCount = snap.ProcessedCount
	job.QualifiedCount = snap.QualifiedCount
	job.DuplicatesSkipped = snap.DuplicatesSkipped
	job.ActiveWorkers = snap.ActiveWorkers
	return nil
}

func (m *memJobStore) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, j := range m.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memJobStore) status(id string) domain.JobStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id].Status
}

func (m *memJobStore) completedAt(id string) *time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id].CompletedAt
}

type memLogStore struct {
	mu      sync.Mutex
	entries []domain.JobLog
}

func (m *memLogStore) Append(ctx context.Context, entry *domain.JobLog) (*domain.JobLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return entry, nil
}

func (m *memLogStore) ListByJob(ctx context.Context, jobID string, limit int) ([]domain.JobLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.JobLog
	for _, e := range m.entries {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

// memLeadStore backs both the dedupe ledger and the LeadReader side.
type memLeadStore struct {
	mu    sync.Mutex
	leads map[string]*domain.Lead
}

func newMemLeadStore() *memLeadStore {
	return &memLeadStore{leads: make(map[string]*domain.Lead)}
}

func (m *memLeadStore) InsertIfAbsent(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.leads[lead.Fingerprint]; ok {
		return nil, nil
	}
	cp := *lead
	m.leads[lead.Fingerprint] = &cp
	return lead, nil
}

func (m *memLeadStore) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.leads[fingerprint]
	return ok, nil
}

func (m *memLeadStore) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Lead
	for _, l := range m.leads {
		if l.JobID == jobID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memLeadStore) CountByJob(ctx context.Context, jobID string) (int64, error) {
	leads, _ := m.ListByJob(ctx, jobID, 0, 0)
	return int64(len(leads)), nil
}

func (m *memLeadStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.leads)), nil
}

// stubDiscoverer returns a fixed candidate list, optionally failing.
type stubDiscoverer struct {
	candidates []domain.Candidate
	err        error
}

func (d *stubDiscoverer) Discover(ctx context.Context, platform domain.Platform, keywords []string, quantity int, progress discovery.ProgressFunc) ([]domain.Candidate, error) {
	return d.candidates, d.err
}

// platformDiscoverer records the quantity requested per platform and can
// fail one platform's slice.
type platformDiscoverer struct {
	mu     sync.Mutex
	asked  map[domain.Platform]int
	failOn domain.Platform
}

func (d *platformDiscoverer) Discover(ctx context.Context, platform domain.Platform, keywords []string, quantity int, progress discovery.ProgressFunc) ([]domain.Candidate, error) {
	d.mu.Lock()
	if d.asked == nil {
		d.asked = make(map[domain.Platform]int)
	}
	d.asked[platform] = quantity
	d.mu.Unlock()

	if platform == d.failOn {
		return nil, fmt.Errorf("%s upstream unavailable", platform)
	}
	var out []domain.Candidate
	for i := 0; i < quantity; i++ {
		c := candidate(fmt.Sprintf("%s_user_%d", platform, i), 5000)
		c.Platform = platform
		out = append(out, c)
	}
	return out, nil
}

func (d *platformDiscoverer) askedFor(platform domain.Platform) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.asked[platform]
}

// stubQualifier scores every candidate the same, optionally failing or
// blocking on a gate.
type stubQualifier struct {
	result *qualify.Qualification
	err    error
	gate   chan struct{}
}

func (q *stubQualifier) Qualify(ctx context.Context, candidate *domain.Candidate, offering string) (*qualify.Qualification, error) {
	if q.gate != nil {
		<-q.gate
	}
	if q.err != nil {
		return nil, q.err
	}
	return q.result, nil
}

// ---- helpers ----

func candidate(username string, followers int) domain.Candidate {
	return domain.Candidate{
		Platform:      domain.PlatformInstagram,
		Username:      username,
		ProfileURL:    "https://www.instagram.com/" + username,
		Bio:           "coffee studio",
		FollowerCount: followers,
	}
}

type testEnv struct {
	scout *ScoutService
	jobs  *memJobStore
	logs  *memLogStore
	leads *memLeadStore
}

func newTestEnv(t *testing.T, disc discovery.Discoverer, qual qualify.Qualifier, workers int) *testEnv {
	t.Helper()
	jobs := newMemJobStore()
	logs := &memLogStore{}
	leads := newMemLeadStore()

	quiet := logger.New(&logger.Config{Level: "error", Format: "text", Output: io.Discard})

	scout := NewScoutService(
		jobs, logs, leads,
		dedupe.NewLedger(leads),
		NewWorkerPool(workers),
		NewBroadcaster(),
		qual,
		disc,
		nil,
		quiet,
		ScoutConfig{
			MinFollowers:  100,
			MaxFollowers:  500000,
			ScoreFloor:    0.4,
			StatsInterval: 50 * time.Millisecond,
		},
	)
	return &testEnv{scout: scout, jobs: jobs, logs: logs, leads: leads}
}

func (e *testEnv) startJob(t *testing.T, quantity int) (*domain.Job, *Subscriber) {
	t.Helper()
	return e.startJobOn(t, domain.PlatformInstagram, quantity)
}

func (e *testEnv) startJobOn(t *testing.T, platform domain.Platform, quantity int) (*domain.Job, *Subscriber) {
	t.Helper()
	job, err := e.scout.CreateJob(context.Background(), &JobSpec{
		Platform: platform,
		Keywords: []string{"coffee"},
		Offering: "espresso machines",
		Quantity: quantity,
	})
	require.NoError(t, err)

	sub := e.scout.Broadcaster().Subscribe(job.ID)
	require.NoError(t, e.scout.Start(context.Background(), job.ID))
	return job, sub
}

// waitComplete drains a subscriber until the complete event and returns every
// event seen, complete included.
func waitComplete(t *testing.T, sub *Subscriber) []domain.Event {
	t.Helper()
	var events []domain.Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-sub.Events():
			events = append(events, ev)
			if ev.Type == domain.EventTypeComplete {
				return events
			}
		case <-deadline:
			t.Fatal("timed out waiting for complete event")
		}
	}
}

func qualified(score float64) *qualify.Qualification {
	return &qualify.Qualification{
		IsQualified:    true,
		RelevanceScore: score,
		BusinessType:   "business",
		Summary:        "stub",
	}
}

// ---- tests ----

func TestCreateJobValidation(t *testing.T) {
	env := newTestEnv(t, &stubDiscoverer{}, &stubQualifier{result: qualified(0.9)}, 2)

	testCases := []struct {
		name string
		spec JobSpec
	}{
		{name: "bad platform", spec: JobSpec{Platform: "myspace", Keywords: []string{"x"}, Offering: "y", Quantity: 10}},
		{name: "no keywords", spec: JobSpec{Platform: domain.PlatformInstagram, Offering: "y", Quantity: 10}},
		{name: "no offering", spec: JobSpec{Platform: domain.PlatformInstagram, Keywords: []string{"x"}, Quantity: 10}},
		{name: "zero quantity", spec: JobSpec{Platform: domain.PlatformInstagram, Keywords: []string{"x"}, Offering: "y"}},
		{name: "over cap", spec: JobSpec{Platform: domain.PlatformInstagram, Keywords: []string{"x"}, Offering: "y", Quantity: MaxTargetQuantity + 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.scout.CreateJob(context.Background(), &tc.spec)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestJobRunsToCompletion(t *testing.T) {
	disc := &stubDiscoverer{candidates: []domain.Candidate{
		candidate("alpha", 5000),
		candidate("beta", 8000),
		candidate("gamma", 12000),
	}}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 2)

	job, sub := env.startJob(t, 3)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	final := events[len(events)-1]
	require.Equal(t, domain.EventTypeComplete, final.Type)
	assert.Equal(t, domain.JobStatusCompleted, final.Stats.Status)
	assert.Equal(t, 3, final.Stats.ProcessedCount)
	assert.Equal(t, 3, final.Stats.QualifiedCount)
	assert.Equal(t, 0, final.Stats.DuplicatesSkipped)
	assert.Equal(t, 0, final.Stats.ActiveWorkers)

	assert.Equal(t, domain.JobStatusCompleted, env.jobs.status(job.ID))
	n, _ := env.leads.CountByJob(context.Background(), job.ID)
	assert.Equal(t, int64(3), n)
}

// TestDuplicateCandidatesInsertOnce verifies repeated profiles yield exactly
// one lead row and a duplicate count, however many workers race.
func TestDuplicateCandidatesInsertOnce(t *testing.T) {
	dupe := candidate("repeat_offender", 9000)
	disc := &stubDiscoverer{candidates: []domain.Candidate{
		dupe, dupe, dupe, dupe,
		candidate("unique_one", 4000),
	}}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.7)}, 4)

	job, sub := env.startJob(t, 5)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	final := events[len(events)-1].Stats
	assert.Equal(t, 2, final.ProcessedCount, "only distinct profiles count as processed")
	assert.Equal(t, 3, final.DuplicatesSkipped)

	n, _ := env.leads.Count(context.Background())
	assert.Equal(t, int64(2), n, "duplicate profile must insert exactly once")
}

func TestFollowerRangeFiltered(t *testing.T) {
	disc := &stubDiscoverer{candidates: []domain.Candidate{
		candidate("too_small", 10),
		candidate("too_big", 900000),
		candidate("just_right", 5000),
	}}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 2)

	job, sub := env.startJob(t, 3)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	final := events[len(events)-1].Stats
	assert.Equal(t, 1, final.ProcessedCount)
	assert.Equal(t, 0, final.DuplicatesSkipped, "range rejects are not duplicates")
}

// TestQualifierFaultFallsBack verifies a failing qualifier degrades to the
// heuristic instead of failing the job.
func TestQualifierFaultFallsBack(t *testing.T) {
	disc := &stubDiscoverer{candidates: []domain.Candidate{
		{
			Platform:      domain.PlatformInstagram,
			Username:      "espresso_lab",
			ProfileURL:    "https://www.instagram.com/espresso_lab",
			Bio:           "Espresso machines and espresso gear studio",
			Title:         "Founder",
			Email:         "hi@espressolab.example.com",
			FollowerCount: 20000,
		},
	}}
	env := newTestEnv(t, disc, &stubQualifier{err: errors.New("model overloaded")}, 2)

	job, sub := env.startJob(t, 1)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	final := events[len(events)-1].Stats
	assert.Equal(t, domain.JobStatusCompleted, final.Status)
	assert.Equal(t, 1, final.ProcessedCount, "heuristic fallback should still process the candidate")
}

func TestDiscoveryFaultFailsJob(t *testing.T) {
	disc := &stubDiscoverer{err: errors.New("upstream 503")}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 2)

	job, sub := env.startJob(t, 10)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	final := events[len(events)-1].Stats
	assert.Equal(t, domain.JobStatusFailed, final.Status)
	assert.Equal(t, domain.JobStatusFailed, env.jobs.status(job.ID))

	stored, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.ErrorMessage, "upstream 503")
}

// TestCancelStopsDispatch verifies cancellation stops new work, lets in-flight
// work finish, and still settles with one complete event.
func TestCancelStopsDispatch(t *testing.T) {
	var many []domain.Candidate
	for i := 0; i < 50; i++ {
		many = append(many, candidate(fmt.Sprintf("user_%d", i), 5000))
	}
	gate := make(chan struct{})
	qual := &stubQualifier{result: qualified(0.8), gate: gate}
	env := newTestEnv(t, &stubDiscoverer{candidates: many}, qual, 1)

	job, sub := env.startJob(t, 50)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)

	// Let the first task reach the qualifier, then cancel and release.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, env.scout.Cancel(context.Background(), job.ID))
	close(gate)

	events := waitComplete(t, sub)

	var completes int
	for _, ev := range events {
		if ev.Type == domain.EventTypeComplete {
			completes++
		}
	}
	assert.Equal(t, 1, completes, "exactly one complete event")

	final := events[len(events)-1].Stats
	assert.Equal(t, domain.JobStatusCancelled, final.Status)
	assert.Less(t, final.ProcessedCount, 50, "cancellation should stop dispatch early")
	assert.Equal(t, domain.JobStatusCancelled, env.jobs.status(job.ID))

	// Cancel is idempotent, before and after settling.
	assert.NoError(t, env.scout.Cancel(context.Background(), job.ID))
}

func TestCancelUnknownJob(t *testing.T) {
	env := newTestEnv(t, &stubDiscoverer{}, &stubQualifier{result: qualified(0.8)}, 1)
	err := env.scout.Cancel(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestStartRejectsNonQueued(t *testing.T) {
	disc := &stubDiscoverer{candidates: []domain.Candidate{candidate("alpha", 5000)}}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 1)

	job, sub := env.startJob(t, 1)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)

	err := env.scout.Start(context.Background(), job.ID)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	waitComplete(t, sub)

	// Terminal jobs cannot be restarted either.
	err = env.scout.Start(context.Background(), job.ID)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestStartUnknownJob(t *testing.T) {
	env := newTestEnv(t, &stubDiscoverer{}, &stubQualifier{result: qualified(0.8)}, 1)
	err := env.scout.Start(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

// TestStatsEventsDuringRun verifies periodic snapshots reach subscribers
// while the job is active.
func TestStatsEventsDuringRun(t *testing.T) {
	var many []domain.Candidate
	for i := 0; i < 20; i++ {
		many = append(many, candidate(fmt.Sprintf("user_%d", i), 5000))
	}
	gate := make(chan struct{})
	qual := &stubQualifier{result: qualified(0.8), gate: gate}
	env := newTestEnv(t, &stubDiscoverer{candidates: many}, qual, 2)

	job, sub := env.startJob(t, 20)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)

	// Hold workers long enough for at least one stats tick.
	time.Sleep(150 * time.Millisecond)
	close(gate)

	events := waitComplete(t, sub)

	var statsSeen bool
	for _, ev := range events {
		if ev.Type == domain.EventTypeStats {
			statsSeen = true
			break
		}
	}
	assert.True(t, statsSeen, "expected at least one stats event during the run")
}

func TestGetJobOverlaysLiveCounters(t *testing.T) {
	var many []domain.Candidate
	for i := 0; i < 10; i++ {
		many = append(many, candidate(fmt.Sprintf("user_%d", i), 5000))
	}
	gate := make(chan struct{})
	qual := &stubQualifier{result: qualified(0.8), gate: gate}
	env := newTestEnv(t, &stubDiscoverer{candidates: many}, qual, 2)

	job, sub := env.startJob(t, 10)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)

	live, err := env.scout.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusRunning, live.Status)

	close(gate)
	waitComplete(t, sub)

	settled, err := env.scout.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, settled.Status)
	assert.Equal(t, 10, settled.ProcessedCount)
}

// TestBothPlatformSplit verifies a "both" job asks instagram for 60% of the
// quantity and linkedin for the rest, and processes the union.
func TestBothPlatformSplit(t *testing.T) {
	disc := &platformDiscoverer{}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 4)

	job, sub := env.startJobOn(t, domain.PlatformBoth, 50)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	assert.Equal(t, 30, disc.askedFor(domain.PlatformInstagram))
	assert.Equal(t, 20, disc.askedFor(domain.PlatformLinkedIn))

	final := events[len(events)-1].Stats
	assert.Equal(t, domain.JobStatusCompleted, final.Status)
	assert.Equal(t, 50, final.ProcessedCount)

	leads, err := env.leads.ListByJob(context.Background(), job.ID, 0, 0)
	require.NoError(t, err)
	platforms := make(map[domain.Platform]int)
	for _, l := range leads {
		platforms[l.Platform]++
	}
	assert.Equal(t, 30, platforms[domain.PlatformInstagram])
	assert.Equal(t, 20, platforms[domain.PlatformLinkedIn])
}

// TestBothPlatformPartialDiscoveryFailure verifies a discovery fault on the
// second platform fails the whole job even though the first slice returned
// candidates.
func TestBothPlatformPartialDiscoveryFailure(t *testing.T) {
	disc := &platformDiscoverer{failOn: domain.PlatformLinkedIn}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 4)

	job, sub := env.startJobOn(t, domain.PlatformBoth, 50)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	events := waitComplete(t, sub)

	// The first slice was requested before the fault.
	assert.Equal(t, 30, disc.askedFor(domain.PlatformInstagram))

	final := events[len(events)-1].Stats
	assert.Equal(t, domain.JobStatusFailed, final.Status)
	assert.Equal(t, domain.JobStatusFailed, env.jobs.status(job.ID))

	stored, err := env.jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.ErrorMessage, "linkedin")
}

// TestCancelDefersCompletedAtUntilDrain verifies a cancellation request does
// not mark the job finished while admitted tasks are still running.
func TestCancelDefersCompletedAtUntilDrain(t *testing.T) {
	var many []domain.Candidate
	for i := 0; i < 30; i++ {
		many = append(many, candidate(fmt.Sprintf("user_%d", i), 5000))
	}
	gate := make(chan struct{})
	qual := &stubQualifier{result: qualified(0.8), gate: gate}
	env := newTestEnv(t, &stubDiscoverer{candidates: many}, qual, 1)

	job, sub := env.startJob(t, 30)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, env.scout.Cancel(context.Background(), job.ID))

	// Still draining: status is cancelled but the job is not finished yet.
	assert.Equal(t, domain.JobStatusCancelled, env.jobs.status(job.ID))
	assert.Nil(t, env.jobs.completedAt(job.ID), "completed_at must not be set before drain")

	close(gate)
	waitComplete(t, sub)

	assert.NotNil(t, env.jobs.completedAt(job.ID), "completed_at must be set once drained")
}

// TestCancelQueuedJobIsTerminal verifies cancelling a job that never started
// finishes it immediately.
func TestCancelQueuedJobIsTerminal(t *testing.T) {
	env := newTestEnv(t, &stubDiscoverer{}, &stubQualifier{result: qualified(0.8)}, 1)

	job, err := env.scout.CreateJob(context.Background(), &JobSpec{
		Platform: domain.PlatformInstagram,
		Keywords: []string{"coffee"},
		Offering: "espresso machines",
		Quantity: 5,
	})
	require.NoError(t, err)

	require.NoError(t, env.scout.Cancel(context.Background(), job.ID))
	assert.Equal(t, domain.JobStatusCancelled, env.jobs.status(job.ID))
	assert.NotNil(t, env.jobs.completedAt(job.ID))
}

func TestGetSummary(t *testing.T) {
	disc := &stubDiscoverer{candidates: []domain.Candidate{candidate("alpha", 5000)}}
	env := newTestEnv(t, disc, &stubQualifier{result: qualified(0.8)}, 1)

	job, sub := env.startJob(t, 1)
	defer env.scout.Broadcaster().Unsubscribe(job.ID, sub)
	waitComplete(t, sub)

	summary, err := env.scout.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.JobsByStatus[domain.JobStatusCompleted])
	assert.Equal(t, int64(1), summary.TotalLeads)
}
