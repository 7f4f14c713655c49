// Package engine implements the learning loop core: outcome recording,
// effectiveness aggregation, confidence calibration, and anomaly detection.
package engine

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sells-group/learning-loop/internal/notify"
	"github.com/sells-group/learning-loop/internal/research"
	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

const (
	defaultLookbackDays     = 90
	defaultSweepWindowDays  = 30
	defaultSweepParallelism = 4

	// historyCap bounds the in-process calibration history.
	historyCap = 50
)

// Sentinel errors returned by engine operations.
var (
	ErrListingNotFound    = errors.New("listing research not found")
	ErrOutcomeNotFound    = errors.New("outcome not found")
	ErrAnomalyNotFound    = errors.New("anomaly not found")
	ErrDuplicateOutcome   = errors.New("outcome already recorded for listing")
	ErrCalibrationRunning = errors.New("calibration run already in progress")
	ErrSweepRunning       = errors.New("anomaly sweep already in progress")
)

// Engine orchestrates the learning loop over injected dependencies.
type Engine struct {
	store    store.Store
	tools    research.ToolUsageProvider
	notifier notify.Notifier
	log      *slog.Logger

	lookbackDays     int
	sweepWindowDays  int
	sweepParallelism int
	now              func() time.Time

	// calibMu and sweepMu enforce single-flight for the two scheduled
	// operations within this process.
	calibMu sync.Mutex
	sweepMu sync.Mutex

	histMu  sync.Mutex
	history []domain.CalibrationRun
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	tools research.ToolUsageProvider,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		tools:            tools,
		notifier:         n,
		log:              slog.Default(),
		lookbackDays:     defaultLookbackDays,
		sweepWindowDays:  defaultSweepWindowDays,
		sweepParallelism: defaultSweepParallelism,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithLookbackDays sets the calibration lookback window.
func WithLookbackDays(days int) EngineOption {
	return func(e *Engine) {
		e.lookbackDays = days
	}
}

// WithSweepWindowDays sets the anomaly sweep window.
func WithSweepWindowDays(days int) EngineOption {
	return func(e *Engine) {
		e.sweepWindowDays = days
	}
}

// WithSweepParallelism bounds the per-organization sweep fan-out.
func WithSweepParallelism(n int) EngineOption {
	return func(e *Engine) {
		e.sweepParallelism = n
	}
}

// WithNowFunc overrides the clock. Used by tests.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = f
	}
}

// effectivenessScope maps an outcome's organization to its aggregation
// scope. Outcomes without an organization feed the global buckets.
func effectivenessScope(orgID string) string {
	if orgID == "" {
		return domain.ScopeGlobal
	}
	return orgID
}
