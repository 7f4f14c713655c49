// Package store defines the datastore abstraction for the learning loop.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

// OutcomeQuery defines optional filters for outcome queries. OrgID is
// mandatory: outcomes are never listed across organizations.
type OutcomeQuery struct {
	OrgID       string
	Quality     *string
	Marketplace *string
	Returned    *bool
	Since       *time.Time
	Until       *time.Time
	Limit       int // default 50
	Offset      int
	OrderBy     string // "sold_at", "recorded_at", "sold_price"
}

// AnomalyQuery defines optional filters for anomaly queries. An empty OrgID
// lists across all organizations (admin surface).
type AnomalyQuery struct {
	OrgID           string
	Type            *string
	Severity        *string
	IncludeResolved bool
	Limit           int
}

// EffectivenessDelta is the per-tool increment applied to one effectiveness
// bucket when an outcome is recorded. All fields are additive.
type EffectivenessDelta struct {
	OrgID       string
	ToolType    domain.ToolType
	PeriodStart time.Time
	PeriodEnd   time.Time

	Uses  int
	Sales int

	// PriceDeviation, when set, adds one price accuracy sample.
	PriceDeviation *float64

	// IdentificationJudged adds one identification judgement;
	// IdentificationCorrect marks it correct.
	IdentificationJudged  bool
	IdentificationCorrect bool

	// Confidence and Accuracy add one calibration sample pair.
	Confidence float64
	Accuracy   float64
}

// Store defines all data access operations for the learning loop.
type Store interface {
	// Listing read model (owned by the listing service; writes happen only
	// through the replication endpoint)
	GetListingResearch(ctx context.Context, listingID string) (*domain.ListingResearch, error)
	UpsertListingResearch(ctx context.Context, r *domain.ListingResearch) error
	ListToolUsage(ctx context.Context, listingID string) ([]domain.ToolUsage, error)
	ReplaceToolUsage(ctx context.Context, listingID string, usages []domain.ToolUsage) error

	// Outcomes
	CreateOutcome(ctx context.Context, o *domain.Outcome) error
	GetOutcome(ctx context.Context, orgID, id string) (*domain.Outcome, error)
	GetOutcomeByListing(ctx context.Context, listingID string) (*domain.Outcome, error)
	ListOutcomes(ctx context.Context, opts *OutcomeQuery) ([]domain.Outcome, int, error)
	ListRecentOutcomes(ctx context.Context, orgID string, since time.Time) ([]domain.Outcome, error)
	ListActiveOrgs(ctx context.Context, since time.Time) ([]string, error)
	MarkOutcomeReturned(ctx context.Context, id, reason string, returnedAt time.Time) (*domain.Outcome, error)
	SetIdentificationCorrect(ctx context.Context, orgID, id string, correct bool) (*domain.Outcome, error)

	// Effectiveness aggregates
	ApplyEffectivenessDelta(ctx context.Context, d *EffectivenessDelta) error
	// IncrementReturnContribution bumps a tool's return counter in one
	// period bucket. A missing bucket is a silent no-op, never a create.
	IncrementReturnContribution(ctx context.Context, orgID string, toolType domain.ToolType, periodStart time.Time) error
	ListCurrentEffectiveness(ctx context.Context, orgID string, periodStart time.Time) ([]domain.EffectivenessRecord, error)
	ListEffectivenessTrend(ctx context.Context, orgID string, toolType domain.ToolType, months int) ([]domain.EffectivenessRecord, error)
	ListEffectivenessSince(ctx context.Context, cutoff time.Time) ([]domain.EffectivenessRecord, error)
	ApplyCalibration(ctx context.Context, toolType domain.ToolType, cutoff time.Time, suggestedWeight, score float64, at time.Time) error
	SetToolWeight(ctx context.Context, toolType domain.ToolType, periodStart time.Time, weight float64) error

	// Anomalies
	GetOpenAnomaly(ctx context.Context, orgID string, typ domain.AnomalyType) (*domain.Anomaly, error)
	CreateAnomaly(ctx context.Context, a *domain.Anomaly) error
	UpdateAnomalyEvidence(ctx context.Context, id string, severity domain.Severity, description string, itemIDs []string, pattern json.RawMessage, detectedAt time.Time) error
	ListAnomalies(ctx context.Context, opts *AnomalyQuery) ([]domain.Anomaly, error)
	ResolveAnomaly(ctx context.Context, orgID, id, notes, resolvedBy string) (*domain.Anomaly, error)

	// Calibration history
	InsertCalibrationRun(ctx context.Context, run *domain.CalibrationRun) error
	ListCalibrationRuns(ctx context.Context, limit int) ([]domain.CalibrationRun, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
