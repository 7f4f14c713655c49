package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// Scheduled job names, also used as lock keys and job_runs identifiers.
const (
	JobCalibration = "calibration"
	JobSweep       = "anomaly_sweep"
)

// jobLockTTL bounds how long a crashed replica can hold a job lock.
const jobLockTTL = 30 * time.Minute

// staleRunAge is how old a still-running job_runs row must be before it is
// presumed crashed.
const staleRunAge = 2 * time.Hour

// Scheduler runs the weekly calibration and daily anomaly sweep. The
// in-process TryLock in the engine handles same-process overlap; the
// Postgres job lock serializes replicas.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	holder string
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that runs engine jobs on a schedule.
func NewScheduler(
	eng *Engine,
	s store.Store,
	calibrationInterval time.Duration,
	sweepInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sch := &Scheduler{
		cron:   c,
		engine: eng,
		store:  s,
		holder: uuid.NewString(),
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+calibrationInterval.String(),
		sch.runCalibration,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		sch.runSweep,
	); err != nil {
		return nil, err
	}

	return sch, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RecoverStaleJobRuns marks abandoned running job rows as crashed. Called
// once at startup before the first tick.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleRunAge)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("recovered stale job runs", "count", n)
	}
}

func (s *Scheduler) runCalibration() {
	s.runLocked(JobCalibration, func(ctx context.Context) (int, error) {
		results, err := s.engine.Recalibrate(ctx, domain.TriggerScheduled, "")
		return len(results), err
	})
}

func (s *Scheduler) runSweep() {
	s.runLocked(JobSweep, func(ctx context.Context) (int, error) {
		return s.engine.SweepAll(ctx)
	})
}

// runLocked wraps one job tick with the Postgres lock and a job_runs row.
func (s *Scheduler) runLocked(job string, fn func(context.Context) (int, error)) {
	ctx := context.Background()

	ok, err := s.store.AcquireSchedulerLock(ctx, job, s.holder, jobLockTTL)
	if err != nil {
		s.log.Error("acquiring job lock failed", "job", job, "error", err)
		return
	}
	if !ok {
		s.log.Info("job lock held elsewhere, skipping", "job", job)
		return
	}
	defer func() {
		if relErr := s.store.ReleaseSchedulerLock(ctx, job, s.holder); relErr != nil {
			s.log.Error("releasing job lock failed", "job", job, "error", relErr)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, job)
	if err != nil {
		s.log.Error("recording job run failed", "job", job, "error", err)
		runID = ""
	}

	s.log.Info("scheduled job starting", "job", job)
	n, runErr := fn(ctx)

	status, errText := "completed", ""
	if runErr != nil {
		status, errText = "failed", runErr.Error()
		s.log.Error("scheduled job failed", "job", job, "error", runErr)
	} else {
		s.log.Info("scheduled job completed", "job", job, "units", n)
	}

	if runID != "" {
		if cErr := s.store.CompleteJobRun(ctx, runID, status, errText, n); cErr != nil {
			s.log.Error("completing job run failed", "job", job, "error", cErr)
		}
	}
}
