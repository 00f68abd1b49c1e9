package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/marvinh/leadscout/internal/dedupe"
	"github.com/marvinh/leadscout/internal/discovery"
	"github.com/marvinh/leadscout/internal/domain"
	"github.com/marvinh/leadscout/internal/logger"
	"github.com/marvinh/leadscout/internal/qualify"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to callers of the job boundary.
var (
	ErrInvalidSpec    = errors.New("invalid job spec")
	ErrAlreadyRunning = errors.New("job already running")
	ErrJobNotFound    = errors.New("job not found")
)

// MaxTargetQuantity caps how many leads one job may request.
const MaxTargetQuantity = 2000

// JobStore is the persistence boundary for job records.
type JobStore interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error
	Finish(ctx context.Context, id string, status domain.JobStatus, errorMessage string) error
	UpdateCounters(ctx context.Context, id string, snapshot *domain.StatsSnapshot) error
	CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error)
}

// LogStore is the persistence boundary for append-only job logs.
type LogStore interface {
	Append(ctx context.Context, entry *domain.JobLog) (*domain.JobLog, error)
	ListByJob(ctx context.Context, jobID string, limit int) ([]domain.JobLog, error)
}

// LeadReader provides read access to persisted leads.
type LeadReader interface {
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Lead, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Deduper is the admission boundary; satisfied by dedupe.Ledger.
type Deduper interface {
	IsAdmitted(ctx context.Context, fingerprint string) (bool, error)
	TryAdmit(ctx context.Context, fingerprint string, lead *domain.Lead) (bool, error)
}

// ReportArchiver uploads a terminal job report somewhere durable. Optional.
type ReportArchiver interface {
	Archive(ctx context.Context, job *domain.Job, final *domain.StatsSnapshot) (string, error)
}

// ScoutConfig tunes the candidate pipeline.
type ScoutConfig struct {
	MinFollowers  int
	MaxFollowers  int
	ScoreFloor    float64
	StatsInterval time.Duration
}

// ScoutService drives jobs from creation to a terminal state: it owns job
// counter mutation, coordinates the pool, the ledger, and the qualifier, and
// feeds the broadcaster. Exactly one instance exists per process.
type ScoutService struct {
	jobs       JobStore
	logs       LogStore
	leads      LeadReader
	ledger     Deduper
	pool       *WorkerPool
	hub        *Broadcaster
	qualifier  qualify.Qualifier
	fallback   *qualify.Heuristic
	discoverer discovery.Discoverer
	archiver   ReportArchiver
	logger     *logger.Logger
	cfg        ScoutConfig

	mu      sync.Mutex
	running map[string]*jobRun
}

// jobRun is the in-memory state of one active job. All counter mutation goes
// through run.mu so concurrent tasks never lose updates.
type jobRun struct {
	mu        sync.Mutex
	job       *domain.Job
	cancelled bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewScoutService wires the controller.
// Parameters:
//   - jobs, logs, leads: persistence boundaries.
//   - ledger: dedupe admission arbiter.
//   - pool: shared worker pool.
//   - hub: event broadcaster.
//   - qualifier: primary qualifier; may fault, the fallback covers it.
//   - discoverer: candidate source.
//   - archiver: optional terminal-report sink; may be nil.
//   - log: base logger.
//   - cfg: pipeline tuning.
// Returns:
//   - *ScoutService: initialized controller.
func NewScoutService(
	jobs JobStore,
	logs LogStore,
	leads LeadReader,
	ledger Deduper,
	pool *WorkerPool,
	hub *Broadcaster,
	qualifier qualify.Qualifier,
	discoverer discovery.Discoverer,
	archiver ReportArchiver,
	log *logger.Logger,
	cfg ScoutConfig,
) *ScoutService {
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = 2 * time.Second
	}
	if cfg.MaxFollowers <= 0 {
		cfg.MaxFollowers = 500000
	}
	return &ScoutService{
		jobs:       jobs,
		logs:       logs,
		leads:      leads,
		ledger:     ledger,
		pool:       pool,
		hub:        hub,
		qualifier:  qualifier,
		fallback:   qualify.NewHeuristic(cfg.ScoreFloor),
		discoverer: discoverer,
		archiver:   archiver,
		logger:     log,
		cfg:        cfg,
		running:    make(map[string]*jobRun),
	}
}

// Broadcaster exposes the hub for stream handlers.
func (s *ScoutService) Broadcaster() *Broadcaster {
	return s.hub
}

// JobSpec is the caller-facing description of a job.
type JobSpec struct {
	Platform domain.Platform `json:"platform"`
	Keywords []string        `json:"keywords"`
	Offering string          `json:"offering"`
	Quantity int             `json:"quantity"`
}

// CreateJob allocates a queued job with zero counters.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - spec: job parameters.
// Returns:
//   - *domain.Job: the created job.
//   - error: ErrInvalidSpec when parameters are missing or out of range.
func (s *ScoutService) CreateJob(ctx context.Context, spec *JobSpec) (*domain.Job, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:             uuid.New().String(),
		Platform:       spec.Platform,
		Keywords:       domain.StringArray(spec.Keywords),
		Offering:       spec.Offering,
		TargetQuantity: spec.Quantity,
		Status:         domain.JobStatusQueued,
		TotalWorkers:   s.pool.Budget(),
		CreatedAt:      time.Now(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func validateSpec(spec *JobSpec) error {
	if spec == nil {
		return fmt.Errorf("%w: empty spec", ErrInvalidSpec)
	}
	if !spec.Platform.Valid() {
		return fmt.Errorf("%w: platform must be instagram, linkedin, or both", ErrInvalidSpec)
	}
	if len(spec.Keywords) == 0 {
		return fmt.Errorf("%w: at least one keyword is required", ErrInvalidSpec)
	}
	if spec.Offering == "" {
		return fmt.Errorf("%w: offering description is required", ErrInvalidSpec)
	}
	if spec.Quantity <= 0 || spec.Quantity > MaxTargetQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidSpec, MaxTargetQuantity)
	}
	return nil
}

// Start transitions a queued job to running and begins discovery and
// processing asynchronously.
// Parameters:
//   - ctx: context for the synchronous part (lookups, status write); the run
//     itself is detached from it.
//   - jobID: job to start.
// Returns:
//   - error: ErrJobNotFound, ErrAlreadyRunning, or a storage fault.
func (s *ScoutService) Start(ctx context.Context, jobID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job.Status != domain.JobStatusQueued {
		return ErrAlreadyRunning
	}

	run := &jobRun{job: job}
	s.mu.Lock()
	if _, exists := s.running[jobID]; exists {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running[jobID] = run
	s.mu.Unlock()

	if err := s.jobs.UpdateStatus(ctx, jobID, domain.JobStatusRunning, ""); err != nil {
		s.mu.Lock()
		delete(s.running, jobID)
		s.mu.Unlock()
		return fmt.Errorf("failed to mark job running: %w", err)
	}
	now := time.Now()
	job.Status = domain.JobStatusRunning
	job.StartedAt = &now

	go s.run(run)
	return nil
}

// run executes one job to its terminal state. It is the only writer of the
// job's terminal transition, so the completion event fires exactly once.
func (s *ScoutService) run(run *jobRun) {
	job := run.job
	ctx := logger.SetJobID(context.Background(), job.ID)
	dispatchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	run.mu.Lock()
	run.cancel = cancel
	run.mu.Unlock()

	start := time.Now()
	s.jobLog(ctx, job, 0, domain.LogLevelInfo,
		fmt.Sprintf("job started: %d workers, target %d on %s", job.TotalWorkers, job.TargetQuantity, job.Platform),
		domain.JSONMap{"keywords": []string(job.Keywords), "workers": job.TotalWorkers})

	// Periodic stats sampling until the run settles.
	statsDone := make(chan struct{})
	go s.statsLoop(ctx, run, statsDone)

	candidates, err := s.discover(dispatchCtx, run)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Cancelled mid-discovery: settle through the normal drain path
			// so the job ends cancelled, not failed.
			run.wg.Wait()
			close(statsDone)
			s.finish(ctx, run, start)
			return
		}
		// Discovery faults are fatal to the job, even when an earlier
		// platform slice already returned candidates.
		close(statsDone)
		s.fail(ctx, run, err)
		return
	}

	s.jobLog(ctx, job, 0, domain.LogLevelInfo,
		fmt.Sprintf("discovery yielded %d candidates", len(candidates)), nil)

	for i := range candidates {
		if dispatchCtx.Err() != nil {
			break
		}
		run.mu.Lock()
		stopped := run.cancelled
		run.mu.Unlock()
		if stopped {
			break
		}

		cand := candidates[i]
		run.wg.Add(1)
		if err := s.pool.Submit(dispatchCtx, func(workerID int) {
			defer run.wg.Done()
			s.processCandidate(ctx, run, workerID, &cand)
		}); err != nil {
			// Cancelled while waiting for a slot; the task never started.
			run.wg.Done()
			break
		}
	}

	run.wg.Wait()
	close(statsDone)
	s.finish(ctx, run, start)
}

// discover runs the discovery phase, splitting quantity ~60/40 between
// Instagram and LinkedIn when the job targets both.
func (s *ScoutService) discover(ctx context.Context, run *jobRun) ([]domain.Candidate, error) {
	job := run.job
	progress := func(msg string) {
		s.jobLog(ctx, job, 0, domain.LogLevelInfo, msg, nil)
	}

	type slice struct {
		platform domain.Platform
		quantity int
	}
	var plan []slice
	if job.Platform == domain.PlatformBoth {
		igQty := job.TargetQuantity * 6 / 10
		plan = []slice{
			{domain.PlatformInstagram, igQty},
			{domain.PlatformLinkedIn, job.TargetQuantity - igQty},
		}
	} else {
		plan = []slice{{job.Platform, job.TargetQuantity}}
	}

	var all []domain.Candidate
	for _, p := range plan {
		if p.quantity <= 0 {
			continue
		}
		found, err := s.discoverer.Discover(ctx, p.platform, job.Keywords, p.quantity, progress)
		if err != nil {
			return all, fmt.Errorf("discovery on %s failed: %w", p.platform, err)
		}
		all = append(all, found...)
	}
	return all, nil
}

// processCandidate is one unit of work under the pool: validate, dedupe,
// qualify, persist. Faults here are contained to the candidate.
func (s *ScoutService) processCandidate(ctx context.Context, run *jobRun, workerID int, cand *domain.Candidate) {
	job := run.job

	run.mu.Lock()
	job.ActiveWorkers++
	run.mu.Unlock()
	defer func() {
		run.mu.Lock()
		if job.ActiveWorkers > 0 {
			job.ActiveWorkers--
		}
		run.mu.Unlock()
	}()

	// Admissible follower range. Rejections here are logged but counted in no
	// job counter.
	if cand.FollowerCount < s.cfg.MinFollowers || cand.FollowerCount > s.cfg.MaxFollowers {
		s.jobLog(ctx, job, workerID, domain.LogLevelWarn,
			fmt.Sprintf("@%s skipped: %d followers outside range [%d, %d]",
				cand.Username, cand.FollowerCount, s.cfg.MinFollowers, s.cfg.MaxFollowers), nil)
		return
	}

	fp := dedupe.Fingerprint(cand)
	admitted, err := s.ledger.IsAdmitted(ctx, fp)
	if err != nil {
		s.jobLog(ctx, job, workerID, domain.LogLevelError,
			fmt.Sprintf("@%s dedupe check failed: %v", cand.Username, err), nil)
		return
	}
	if admitted {
		s.countDuplicate(ctx, run, workerID, cand)
		return
	}

	qual, err := s.qualifier.Qualify(ctx, cand, job.Offering)
	if err != nil {
		// Qualifier faults are recovered locally, never surfaced to the job.
		s.jobLog(ctx, job, workerID, domain.LogLevelWarn,
			fmt.Sprintf("@%s qualifier fault, using fallback heuristic: %v", cand.Username, err), nil)
		qual, _ = s.fallback.Qualify(ctx, cand, job.Offering)
	}

	if qual.BusinessType == "excluded" || qual.RelevanceScore < s.cfg.ScoreFloor {
		s.jobLog(ctx, job, workerID, domain.LogLevelWarn,
			fmt.Sprintf("@%s rejected: score %.2f (%s)", cand.Username, qual.RelevanceScore, qual.BusinessType), nil)
		return
	}

	lead := &domain.Lead{
		ID:             uuid.New().String(),
		JobID:          job.ID,
		Platform:       cand.Platform,
		Username:       cand.Username,
		ProfileURL:     cand.ProfileURL,
		FollowerCount:  cand.FollowerCount,
		Bio:            cand.Bio,
		Email:          cand.Email,
		FullName:       cand.FullName,
		Title:          cand.Title,
		Company:        cand.Company,
		IsQualified:    qual.IsQualified,
		RelevanceScore: qual.RelevanceScore,
		BusinessType:   qual.BusinessType,
		Summary:        qual.Summary,
		CreatedAt:      time.Now(),
	}

	ok, err := s.ledger.TryAdmit(ctx, fp, lead)
	if err != nil {
		s.jobLog(ctx, job, workerID, domain.LogLevelError,
			fmt.Sprintf("@%s failed to persist: %v", cand.Username, err), nil)
		return
	}
	if !ok {
		s.countDuplicate(ctx, run, workerID, cand)
		return
	}

	run.mu.Lock()
	job.ProcessedCount++
	if qual.IsQualified {
		job.QualifiedCount++
	}
	run.mu.Unlock()

	level := domain.LogLevelInfo
	msg := fmt.Sprintf("@%s saved (score %.2f)", cand.Username, qual.RelevanceScore)
	if qual.IsQualified {
		level = domain.LogLevelSuccess
		msg = fmt.Sprintf("@%s qualified: %s (score %.2f)", cand.Username, qual.BusinessType, qual.RelevanceScore)
	}
	s.jobLog(ctx, job, workerID, level, msg, domain.JSONMap{"fingerprint": fp})
}

func (s *ScoutService) countDuplicate(ctx context.Context, run *jobRun, workerID int, cand *domain.Candidate) {
	run.mu.Lock()
	run.job.DuplicatesSkipped++
	run.mu.Unlock()
	s.jobLog(ctx, run.job, workerID, domain.LogLevelWarn,
		fmt.Sprintf("@%s skipped: duplicate profile", cand.Username), nil)
}

// statsLoop publishes and persists counter snapshots until done closes.
func (s *ScoutService) statsLoop(ctx context.Context, run *jobRun, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.StatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			snap := s.snapshot(run)
			s.hub.PublishStats(run.job.ID, snap)
			if err := s.jobs.UpdateCounters(ctx, run.job.ID, snap); err != nil {
				s.logger.WithError(err).WithField(logger.FieldJobID, run.job.ID).
					Warn("failed to persist counters")
			}
		case <-done:
			return
		}
	}
}

// snapshot copies the job's counters under the run lock.
func (s *ScoutService) snapshot(run *jobRun) *domain.StatsSnapshot {
	run.mu.Lock()
	defer run.mu.Unlock()
	job := run.job
	return &domain.StatsSnapshot{
		JobID:             job.ID,
		Status:            job.Status,
		ProcessedCount:    job.ProcessedCount,
		QualifiedCount:    job.QualifiedCount,
		DuplicatesSkipped: job.DuplicatesSkipped,
		ActiveWorkers:     job.ActiveWorkers,
		TotalWorkers:      job.TotalWorkers,
		TargetQuantity:    job.TargetQuantity,
		Timestamp:         time.Now(),
	}
}

// finish settles a drained job: terminal status, final counters, summary log,
// and exactly one complete event.
func (s *ScoutService) finish(ctx context.Context, run *jobRun, start time.Time) {
	job := run.job

	run.mu.Lock()
	job.ActiveWorkers = 0
	status := domain.JobStatusCompleted
	if run.cancelled {
		status = domain.JobStatusCancelled
	}
	job.Status = status
	run.mu.Unlock()

	snap := s.snapshot(run)
	if err := s.jobs.UpdateCounters(ctx, job.ID, snap); err != nil {
		s.logger.WithError(err).WithField(logger.FieldJobID, job.ID).Error("failed to persist final counters")
	}
	if err := s.jobs.Finish(ctx, job.ID, status, ""); err != nil {
		s.logger.WithError(err).WithField(logger.FieldJobID, job.ID).Error("failed to persist terminal status")
	}

	s.jobLog(ctx, job, 0, domain.LogLevelSuccess,
		fmt.Sprintf("job %s: %d processed, %d qualified, %d duplicates in %s",
			status, snap.ProcessedCount, snap.QualifiedCount, snap.DuplicatesSkipped,
			time.Since(start).Round(time.Millisecond)),
		domain.JSONMap{"status": string(status)})

	s.hub.PublishStats(job.ID, snap)
	s.hub.PublishComplete(job.ID, snap)

	s.archive(ctx, job, snap)

	s.mu.Lock()
	delete(s.running, job.ID)
	s.mu.Unlock()
}

// fail aborts a job during a job-wide phase (discovery).
func (s *ScoutService) fail(ctx context.Context, run *jobRun, cause error) {
	job := run.job

	run.mu.Lock()
	job.Status = domain.JobStatusFailed
	job.ErrorMessage = cause.Error()
	run.mu.Unlock()

	if err := s.jobs.Finish(ctx, job.ID, domain.JobStatusFailed, cause.Error()); err != nil {
		s.logger.WithError(err).WithField(logger.FieldJobID, job.ID).Error("failed to persist failed status")
	}

	s.jobLog(ctx, job, 0, domain.LogLevelError, fmt.Sprintf("job failed: %v", cause), nil)

	snap := s.snapshot(run)
	s.hub.PublishComplete(job.ID, snap)

	s.mu.Lock()
	delete(s.running, job.ID)
	s.mu.Unlock()
}

func (s *ScoutService) archive(ctx context.Context, job *domain.Job, snap *domain.StatsSnapshot) {
	if s.archiver == nil {
		return
	}
	url, err := s.archiver.Archive(ctx, job, snap)
	if err != nil {
		s.logger.WithError(err).WithField(logger.FieldJobID, job.ID).Warn("failed to archive job report")
		return
	}
	s.logger.WithFields(logger.Fields{logger.FieldJobID: job.ID, "report_url": url}).Info("job report archived")
}

// Cancel stops new dispatch for a running job. Tasks already admitted by the
// pool run to completion and their results still count. Idempotent.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: job to cancel.
// Returns:
//   - error: ErrJobNotFound or a storage fault.
func (s *ScoutService) Cancel(ctx context.Context, jobID string) error {
	s.mu.Lock()
	run, active := s.running[jobID]
	s.mu.Unlock()

	if active {
		run.mu.Lock()
		if run.cancelled {
			run.mu.Unlock()
			return nil
		}
		run.cancelled = true
		run.job.Status = domain.JobStatusCancelled
		cancel := run.cancel
		run.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		s.jobLog(ctx, run.job, 0, domain.LogLevelInfo, "cancellation requested: no new tasks will start", nil)
		// Status only; completed_at is stamped when the drain finishes.
		return s.jobs.UpdateStatus(ctx, jobID, domain.JobStatusCancelled, "")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job.Status.Terminal() {
		return nil
	}
	// A queued job never ran; cancelling it is terminal right away.
	return s.jobs.Finish(ctx, jobID, domain.JobStatusCancelled, "")
}

// GetJob returns a job, overlaying live counters when it is running.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: job to fetch.
// Returns:
//   - *domain.Job: job record with fresh counters.
//   - error: ErrJobNotFound or a storage fault.
func (s *ScoutService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	s.mu.Lock()
	run, active := s.running[jobID]
	s.mu.Unlock()
	if active {
		run.mu.Lock()
		live := *run.job
		run.mu.Unlock()
		return &live, nil
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// ListJobs returns jobs newest first.
func (s *ScoutService) ListJobs(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return s.jobs.List(ctx, limit, offset)
}

// GetLogs returns a job's most recent log entries in emission order.
func (s *ScoutService) GetLogs(ctx context.Context, jobID string, limit int) ([]domain.JobLog, error) {
	return s.logs.ListByJob(ctx, jobID, limit)
}

// GetLeads returns leads persisted by a job.
func (s *ScoutService) GetLeads(ctx context.Context, jobID string, limit, offset int) ([]domain.Lead, error) {
	return s.leads.ListByJob(ctx, jobID, limit, offset)
}

// Summary aggregates totals across the system for the stats endpoint.
type Summary struct {
	JobsByStatus map[domain.JobStatus]int64 `json:"jobs_by_status"`
	TotalLeads   int64                      `json:"total_leads"`
}

// GetSummary returns system-wide job and lead totals.
func (s *ScoutService) GetSummary(ctx context.Context) (*Summary, error) {
	out := &Summary{JobsByStatus: make(map[domain.JobStatus]int64)}
	for _, st := range []domain.JobStatus{
		domain.JobStatusQueued, domain.JobStatusRunning, domain.JobStatusCompleted,
		domain.JobStatusFailed, domain.JobStatusCancelled,
	} {
		n, err := s.jobs.CountByStatus(ctx, st)
		if err != nil {
			return nil, err
		}
		out.JobsByStatus[st] = n
	}
	leads, err := s.leads.Count(ctx)
	if err != nil {
		return nil, err
	}
	out.TotalLeads = leads
	return out, nil
}

// jobLog persists a log entry, mirrors it to the app logger, and broadcasts
// it to subscribers. Log entries for one job reach each subscriber in
// emission order because every entry flows through this single path.
func (s *ScoutService) jobLog(ctx context.Context, job *domain.Job, workerID int, level domain.LogLevel, message string, data domain.JSONMap) {
	entry := &domain.JobLog{
		ID:        uuid.New().String(),
		JobID:     job.ID,
		Worker:    workerID,
		Level:     level,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if _, err := s.logs.Append(ctx, entry); err != nil {
		s.logger.WithError(err).WithField(logger.FieldJobID, job.ID).Warn("failed to persist job log")
	}

	l := s.logger.WithFields(logger.Fields{logger.FieldJobID: job.ID})
	if workerID > 0 {
		l = l.WithField(logger.FieldWorkerID, workerID)
	}
	switch level {
	case domain.LogLevelWarn:
		l.Warn(message)
	case domain.LogLevelError:
		l.Error(message)
	default:
		l.Info(message)
	}

	s.hub.PublishLog(job.ID, entry)
}
