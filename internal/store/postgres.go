package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetListingResearch retrieves the research snapshot for a listing.
func (s *PostgresStore) GetListingResearch(
	ctx context.Context,
	listingID string,
) (*domain.ListingResearch, error) {
	r := &domain.ListingResearch{}
	err := s.pool.QueryRow(ctx, queryGetListingResearch, listingID).Scan(
		&r.ListingID, &r.ItemID, &r.OrgID, &r.ListedPrice, &r.ListedAt,
		&r.PredictedFloor, &r.PredictedTarget, &r.PredictedCeiling,
		&r.Category, &r.Brand, &r.Model, &r.ResearchConfidence,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UpsertListingResearch replicates a research snapshot into the read model,
// keyed by listing id.
func (s *PostgresStore) UpsertListingResearch(
	ctx context.Context,
	r *domain.ListingResearch,
) error {
	args := pgx.NamedArgs{
		"listing_id":          r.ListingID,
		"item_id":             r.ItemID,
		"org_id":              nullableString(r.OrgID),
		"listed_price":        r.ListedPrice,
		"listed_at":           r.ListedAt,
		"predicted_floor":     r.PredictedFloor,
		"predicted_target":    r.PredictedTarget,
		"predicted_ceiling":   r.PredictedCeiling,
		"category":            r.Category,
		"brand":               r.Brand,
		"model":               r.Model,
		"research_confidence": r.ResearchConfidence,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertListingResearch, args); err != nil {
		return fmt.Errorf("upserting listing research: %w", err)
	}
	return nil
}

// ListToolUsage returns the tools that contributed to a listing's research,
// with their reported confidences.
func (s *PostgresStore) ListToolUsage(
	ctx context.Context,
	listingID string,
) ([]domain.ToolUsage, error) {
	rows, err := s.pool.Query(ctx, queryListToolUsage, listingID)
	if err != nil {
		return nil, fmt.Errorf("querying tool usage: %w", err)
	}
	defer rows.Close()

	var usages []domain.ToolUsage
	for rows.Next() {
		var u domain.ToolUsage
		if err := rows.Scan(&u.ToolType, &u.Confidence); err != nil {
			return nil, fmt.Errorf("scanning tool usage: %w", err)
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}

// ReplaceToolUsage swaps a listing's tool usage set in one transaction.
func (s *PostgresStore) ReplaceToolUsage(
	ctx context.Context,
	listingID string,
	usages []domain.ToolUsage,
) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, queryDeleteToolUsage, listingID); err != nil {
		return fmt.Errorf("deleting tool usage: %w", err)
	}

	for _, u := range usages {
		if _, err := tx.Exec(ctx, queryInsertToolUsage, listingID, string(u.ToolType), u.Confidence); err != nil {
			return fmt.Errorf("inserting tool usage: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing tool usage: %w", err)
	}
	return nil
}

// CreateOutcome inserts a new outcome and fills its generated fields.
// The unique index on listing_id surfaces duplicate sale reports as a
// constraint violation.
func (s *PostgresStore) CreateOutcome(ctx context.Context, o *domain.Outcome) error {
	toolsJSON, err := json.Marshal(o.ToolsUsed)
	if err != nil {
		return fmt.Errorf("marshaling tools used: %w", err)
	}

	args := pgx.NamedArgs{
		"org_id":                 o.OrgID,
		"item_id":                o.ItemID,
		"listing_id":             o.ListingID,
		"predicted_floor":        o.PredictedFloor,
		"predicted_target":       o.PredictedTarget,
		"predicted_ceiling":      o.PredictedCeiling,
		"predicted_category":     o.PredictedCategory,
		"predicted_brand":        o.PredictedBrand,
		"predicted_model":        o.PredictedModel,
		"research_confidence":    o.ResearchConfidence,
		"tools_used":             toolsJSON,
		"listed_price":           o.ListedPrice,
		"sold_price":             o.SoldPrice,
		"listed_at":              o.ListedAt,
		"sold_at":                o.SoldAt,
		"days_to_sell":           o.DaysToSell,
		"marketplace":            o.Marketplace,
		"was_returned":           o.WasReturned,
		"return_reason":          o.ReturnReason,
		"price_accuracy_ratio":   o.PriceAccuracyRatio,
		"price_within_bands":     o.PriceWithinBands,
		"identification_correct": o.IdentificationCorrect,
		"quality":                string(o.Quality),
	}

	return s.pool.QueryRow(ctx, queryCreateOutcome, args).Scan(
		&o.ID, &o.RecordedAt, &o.UpdatedAt,
	)
}

// GetOutcome retrieves an outcome by ID within an organization.
func (s *PostgresStore) GetOutcome(ctx context.Context, orgID, id string) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	if err := scanOutcome(s.pool.QueryRow(ctx, queryGetOutcome, orgID, id), o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOutcomeByListing retrieves the outcome recorded for a listing, if any.
func (s *PostgresStore) GetOutcomeByListing(
	ctx context.Context,
	listingID string,
) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	if err := scanOutcome(s.pool.QueryRow(ctx, queryGetOutcomeByListing, listingID), o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOutcomes queries outcomes with optional filters, returning results and
// total count.
func (s *PostgresStore) ListOutcomes(
	ctx context.Context,
	opts *OutcomeQuery,
) ([]domain.Outcome, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting outcomes: %w", err)
	}

	outcomes, err := s.queryOutcomes(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return outcomes, total, nil
}

// ListRecentOutcomes returns an organization's outcomes sold since the
// given time, newest first.
func (s *PostgresStore) ListRecentOutcomes(
	ctx context.Context,
	orgID string,
	since time.Time,
) ([]domain.Outcome, error) {
	return s.queryOutcomes(ctx, queryListRecentOutcomes, orgID, since)
}

// ListActiveOrgs returns the distinct organizations with outcomes sold since
// the given time.
func (s *PostgresStore) ListActiveOrgs(ctx context.Context, since time.Time) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListActiveOrgs, since)
	if err != nil {
		return nil, fmt.Errorf("querying active orgs: %w", err)
	}
	defer rows.Close()

	var orgs []string
	for rows.Next() {
		var org string
		if err := rows.Scan(&org); err != nil {
			return nil, fmt.Errorf("scanning org id: %w", err)
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// MarkOutcomeReturned flips an outcome to returned and downgrades its
// quality. Returns pgx.ErrNoRows if the outcome does not exist or is
// already returned.
func (s *PostgresStore) MarkOutcomeReturned(
	ctx context.Context,
	id, reason string,
	returnedAt time.Time,
) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	err := scanOutcome(s.pool.QueryRow(ctx, queryMarkOutcomeReturned, id, reason, returnedAt), o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// SetIdentificationCorrect records a manual identification judgement.
func (s *PostgresStore) SetIdentificationCorrect(
	ctx context.Context,
	orgID, id string,
	correct bool,
) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	err := scanOutcome(s.pool.QueryRow(ctx, querySetIdentificationCorrect, orgID, id, correct), o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ApplyEffectivenessDelta atomically accumulates one tool's statistics into
// its period bucket, creating the bucket on first use.
func (s *PostgresStore) ApplyEffectivenessDelta(
	ctx context.Context,
	d *EffectivenessDelta,
) error {
	var (
		priceDeviationSum  float64
		priceAccuracyCount int
	)
	if d.PriceDeviation != nil {
		priceDeviationSum = *d.PriceDeviation
		priceAccuracyCount = 1
	}

	var identCorrect, identTotal int
	if d.IdentificationJudged {
		identTotal = 1
		if d.IdentificationCorrect {
			identCorrect = 1
		}
	}

	args := pgx.NamedArgs{
		"org_id":                       d.OrgID,
		"tool_type":                    string(d.ToolType),
		"period_start":                 d.PeriodStart,
		"period_end":                   d.PeriodEnd,
		"uses":                         d.Uses,
		"sales":                        d.Sales,
		"price_deviation_sum":          priceDeviationSum,
		"price_accuracy_count":         priceAccuracyCount,
		"identification_correct_count": identCorrect,
		"identification_total_count":   identTotal,
		"confidence_sum":               d.Confidence,
		"confidence_count":             d.Uses,
		"actual_accuracy_sum":          d.Accuracy,
	}

	if _, err := s.pool.Exec(ctx, queryApplyEffectivenessDelta, args); err != nil {
		return fmt.Errorf("applying effectiveness delta: %w", err)
	}
	return nil
}

// IncrementReturnContribution bumps a tool's return counter in one period
// bucket. Zero rows matched means the bucket was never created by a sale;
// the return is dropped without error.
func (s *PostgresStore) IncrementReturnContribution(
	ctx context.Context,
	orgID string,
	toolType domain.ToolType,
	periodStart time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryIncrementReturnContribution,
		orgID, string(toolType), periodStart,
	)
	if err != nil {
		return fmt.Errorf("incrementing return contribution for %s: %w", toolType, err)
	}
	return nil
}

// ListCurrentEffectiveness returns an organization's per-tool records for
// one period bucket.
func (s *PostgresStore) ListCurrentEffectiveness(
	ctx context.Context,
	orgID string,
	periodStart time.Time,
) ([]domain.EffectivenessRecord, error) {
	return s.queryEffectiveness(ctx, queryListCurrentEffectiveness, orgID, periodStart)
}

// ListEffectivenessTrend returns the most recent period buckets for one
// tool within an organization, newest first.
func (s *PostgresStore) ListEffectivenessTrend(
	ctx context.Context,
	orgID string,
	toolType domain.ToolType,
	months int,
) ([]domain.EffectivenessRecord, error) {
	return s.queryEffectiveness(ctx, queryListEffectivenessTrend, orgID, string(toolType), months)
}

// ListEffectivenessSince returns all records across scopes whose period
// starts at or after the cutoff. A bucket straddling the cutoff is out.
func (s *PostgresStore) ListEffectivenessSince(
	ctx context.Context,
	cutoff time.Time,
) ([]domain.EffectivenessRecord, error) {
	return s.queryEffectiveness(ctx, queryListEffectivenessSince, cutoff)
}

// ApplyCalibration stamps the suggested weight, score, and calibration time
// onto all of a tool's records whose period starts at or after the cutoff,
// the same selection ListEffectivenessSince pools.
func (s *PostgresStore) ApplyCalibration(
	ctx context.Context,
	toolType domain.ToolType,
	cutoff time.Time,
	suggestedWeight, score float64,
	at time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryApplyCalibration,
		string(toolType), suggestedWeight, score, at, cutoff,
	)
	if err != nil {
		return fmt.Errorf("applying calibration for %s: %w", toolType, err)
	}
	return nil
}

// SetToolWeight updates the active weight for a tool across all scopes in
// one period bucket.
func (s *PostgresStore) SetToolWeight(
	ctx context.Context,
	toolType domain.ToolType,
	periodStart time.Time,
	weight float64,
) error {
	_, err := s.pool.Exec(ctx, querySetToolWeight, string(toolType), periodStart, weight)
	if err != nil {
		return fmt.Errorf("setting tool weight for %s: %w", toolType, err)
	}
	return nil
}

// GetOpenAnomaly retrieves the unresolved anomaly of a type within an
// organization, if one exists.
func (s *PostgresStore) GetOpenAnomaly(
	ctx context.Context,
	orgID string,
	typ domain.AnomalyType,
) (*domain.Anomaly, error) {
	a := &domain.Anomaly{}
	err := scanAnomaly(s.pool.QueryRow(ctx, queryGetOpenAnomaly, orgID, string(typ)), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAnomaly inserts a new anomaly, silently ignoring a concurrent
// duplicate of the same open (org, type) pair.
func (s *PostgresStore) CreateAnomaly(ctx context.Context, a *domain.Anomaly) error {
	itemsJSON, err := json.Marshal(a.AffectedItemIDs)
	if err != nil {
		return fmt.Errorf("marshaling affected item ids: %w", err)
	}

	args := pgx.NamedArgs{
		"org_id":            a.OrgID,
		"anomaly_type":      string(a.Type),
		"severity":          string(a.Severity),
		"description":       a.Description,
		"affected_item_ids": itemsJSON,
		"tool_type":         nullableString(string(a.ToolType)),
		"pattern":           a.Pattern,
		"suggested_action":  a.SuggestedAction,
		"detected_at":       a.DetectedAt,
	}

	err = s.pool.QueryRow(ctx, queryCreateAnomaly, args).Scan(&a.ID, &a.DetectedAt)

	// ON CONFLICT DO NOTHING returns no rows — treat as success.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// UpdateAnomalyEvidence refreshes an open anomaly's evidence in place.
func (s *PostgresStore) UpdateAnomalyEvidence(
	ctx context.Context,
	id string,
	severity domain.Severity,
	description string,
	itemIDs []string,
	pattern json.RawMessage,
	detectedAt time.Time,
) error {
	itemsJSON, err := json.Marshal(itemIDs)
	if err != nil {
		return fmt.Errorf("marshaling affected item ids: %w", err)
	}

	_, err = s.pool.Exec(ctx, queryUpdateAnomalyEvidence,
		id, string(severity), description, itemsJSON, pattern, detectedAt,
	)
	if err != nil {
		return fmt.Errorf("updating anomaly evidence: %w", err)
	}
	return nil
}

// ListAnomalies queries anomalies with optional filters.
func (s *PostgresStore) ListAnomalies(
	ctx context.Context,
	opts *AnomalyQuery,
) ([]domain.Anomaly, error) {
	dataSQL, args := opts.ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("querying anomalies: %w", err)
	}
	defer rows.Close()

	var anomalies []domain.Anomaly
	for rows.Next() {
		var a domain.Anomaly
		if err := scanAnomaly(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning anomaly: %w", err)
		}
		anomalies = append(anomalies, a)
	}

	return anomalies, rows.Err()
}

// ResolveAnomaly marks an open anomaly resolved. Returns pgx.ErrNoRows if
// the anomaly does not exist in the organization or is already resolved.
func (s *PostgresStore) ResolveAnomaly(
	ctx context.Context,
	orgID, id, notes, resolvedBy string,
) (*domain.Anomaly, error) {
	a := &domain.Anomaly{}
	err := scanAnomaly(s.pool.QueryRow(ctx, queryResolveAnomaly, orgID, id, notes, resolvedBy), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// InsertCalibrationRun appends one calibration run to the history.
func (s *PostgresStore) InsertCalibrationRun(
	ctx context.Context,
	run *domain.CalibrationRun,
) error {
	resultsJSON, err := json.Marshal(run.Results)
	if err != nil {
		return fmt.Errorf("marshaling calibration results: %w", err)
	}

	err = s.pool.QueryRow(ctx, queryInsertCalibrationRun,
		run.CalibratedAt, string(run.Trigger), run.ActorID, run.LookbackDays, resultsJSON,
	).Scan(&run.ID)
	if err != nil {
		return fmt.Errorf("inserting calibration run: %w", err)
	}
	return nil
}

// ListCalibrationRuns returns the most recent calibration runs, newest first.
func (s *PostgresStore) ListCalibrationRuns(
	ctx context.Context,
	limit int,
) ([]domain.CalibrationRun, error) {
	rows, err := s.pool.Query(ctx, queryListCalibrationRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("querying calibration runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.CalibrationRun
	for rows.Next() {
		var (
			r           domain.CalibrationRun
			resultsJSON []byte
		)
		if err := rows.Scan(
			&r.ID, &r.CalibratedAt, &r.Trigger, &r.ActorID, &r.LookbackDays, &resultsJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning calibration run: %w", err)
		}
		if err := json.Unmarshal(resultsJSON, &r.Results); err != nil {
			return nil, fmt.Errorf("unmarshaling calibration results: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// queryOutcomes is a helper for outcome list queries.
func (s *PostgresStore) queryOutcomes(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Outcome, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var o domain.Outcome
		if err := scanOutcome(rows, &o); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, rows.Err()
}

// queryEffectiveness is a helper for effectiveness record queries.
func (s *PostgresStore) queryEffectiveness(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.EffectivenessRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying effectiveness records: %w", err)
	}
	defer rows.Close()

	var records []domain.EffectivenessRecord
	for rows.Next() {
		var r domain.EffectivenessRecord
		if err := rows.Scan(
			&r.ID, &r.OrgID, &r.ToolType, &r.PeriodStart, &r.PeriodEnd,
			&r.TotalUses, &r.ContributedToSale, &r.ContributedToReturn,
			&r.PriceDeviationSum, &r.PriceAccuracyCount,
			&r.IdentificationCorrectCount, &r.IdentificationTotalCount,
			&r.ConfidenceSum, &r.ConfidenceCount, &r.ActualAccuracySum,
			&r.CurrentWeight, &r.SuggestedWeight, &r.CalibrationScore, &r.LastCalibratedAt,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning effectiveness record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanOutcome scans a full outcome row, decoding the tools_used JSON column.
func scanOutcome(row scannable, o *domain.Outcome) error {
	var toolsJSON []byte

	if err := row.Scan(
		&o.ID, &o.OrgID, &o.ItemID, &o.ListingID,
		&o.PredictedFloor, &o.PredictedTarget, &o.PredictedCeiling,
		&o.PredictedCategory, &o.PredictedBrand, &o.PredictedModel,
		&o.ResearchConfidence, &toolsJSON,
		&o.ListedPrice, &o.SoldPrice, &o.ListedAt, &o.SoldAt, &o.DaysToSell,
		&o.Marketplace, &o.WasReturned, &o.ReturnReason,
		&o.PriceAccuracyRatio, &o.PriceWithinBands, &o.IdentificationCorrect,
		&o.Quality, &o.RecordedAt, &o.UpdatedAt,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(toolsJSON, &o.ToolsUsed); err != nil {
		return fmt.Errorf("unmarshaling tools used: %w", err)
	}

	return nil
}

// scanAnomaly scans a full anomaly row, decoding the affected_item_ids JSON
// column.
func scanAnomaly(row scannable, a *domain.Anomaly) error {
	var itemsJSON []byte

	if err := row.Scan(
		&a.ID, &a.OrgID, &a.Type, &a.Severity, &a.Description,
		&itemsJSON, &a.ToolType, &a.Pattern,
		&a.SuggestedAction, &a.DetectedAt,
		&a.Resolved, &a.ResolvedAt, &a.ResolvedBy, &a.ResolutionNotes,
	); err != nil {
		return err
	}

	if err := json.Unmarshal(itemsJSON, &a.AffectedItemIDs); err != nil {
		return fmt.Errorf("unmarshaling affected item ids: %w", err)
	}

	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// nullableString maps "" to nil so empty optionals land as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
