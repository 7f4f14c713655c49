package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/learning-loop/internal/metrics"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// Per-outcome diagnostic thresholds.
const (
	checkRatioMax      = 0.30
	checkConfidenceGap = 0.25
	checkSlowDays      = 45
)

// Sweep thresholds.
const (
	sweepMinOutcomes = 5

	priceDevMinSamples = 10
	priceDevThreshold  = 0.15
	priceDevWarning    = 0.25

	slowSalesMinSamples  = 5
	slowSalesMeanDays    = 30.0
	slowSalesWarningDays = 45.0

	returnRateMinOutcomes = 10
	returnRateThreshold   = 0.15
	returnRateCritical    = 0.25
)

// checkOutcome runs the stateless per-outcome diagnostics. It only logs:
// persisted anomalies come from the scheduled sweeps, which have enough
// samples to judge a pattern.
func (eng *Engine) checkOutcome(o *domain.Outcome) {
	if o.PriceAccuracyRatio != nil && *o.PriceAccuracyRatio > checkRatioMax {
		eng.log.Warn("price prediction missed badly",
			"outcome_id", o.ID,
			"item_id", o.ItemID,
			"ratio", *o.PriceAccuracyRatio,
		)
	}

	if o.PriceAccuracyRatio != nil {
		gap := math.Abs((1 - *o.PriceAccuracyRatio) - o.ResearchConfidence)
		if gap > checkConfidenceGap {
			eng.log.Warn("confidence poorly matched realized accuracy",
				"outcome_id", o.ID,
				"confidence", o.ResearchConfidence,
				"gap", gap,
			)
		}
	}

	if o.DaysToSell != nil && *o.DaysToSell > checkSlowDays {
		eng.log.Warn("listing sold slowly",
			"outcome_id", o.ID,
			"days_to_sell", *o.DaysToSell,
		)
	}
}

// SweepAll runs the anomaly pattern checks for every organization with
// outcomes in the sweep window, fanning out per org with bounded
// parallelism. Per-org failures are joined and reported while the other
// orgs complete. Returns the count of newly created anomalies; refreshes of
// already-open anomalies do not count. A concurrent sweep returns
// ErrSweepRunning.
func (eng *Engine) SweepAll(ctx context.Context) (int, error) {
	if !eng.sweepMu.TryLock() {
		return 0, ErrSweepRunning
	}
	defer eng.sweepMu.Unlock()

	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	since := eng.now().AddDate(0, 0, -eng.sweepWindowDays)

	orgs, err := eng.store.ListActiveOrgs(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("listing active orgs: %w", err)
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		created int
		errs    []error
	)
	g.SetLimit(eng.sweepParallelism)

	for _, org := range orgs {
		g.Go(func() error {
			n, sweepErr := eng.sweepOrg(ctx, org, since)

			mu.Lock()
			defer mu.Unlock()
			if sweepErr != nil {
				errs = append(errs, fmt.Errorf("org %s: %w", org, sweepErr))
				return nil
			}
			created += n
			return nil
		})
	}
	_ = g.Wait()

	eng.log.Info("anomaly sweep complete",
		"orgs", len(orgs),
		"created", created,
		"failures", len(errs),
	)

	return created, errors.Join(errs...)
}

// SweepOrg runs the pattern checks for a single organization over the
// configured window.
func (eng *Engine) SweepOrg(ctx context.Context, orgID string) (int, error) {
	since := eng.now().AddDate(0, 0, -eng.sweepWindowDays)
	return eng.sweepOrg(ctx, orgID, since)
}

func (eng *Engine) sweepOrg(ctx context.Context, orgID string, since time.Time) (int, error) {
	outcomes, err := eng.store.ListRecentOutcomes(ctx, orgID, since)
	if err != nil {
		return 0, fmt.Errorf("listing recent outcomes: %w", err)
	}
	if len(outcomes) < sweepMinOutcomes {
		eng.log.Debug("skipping org, too few outcomes",
			"org_id", orgID,
			"outcomes", len(outcomes),
		)
		return 0, nil
	}

	detectedAt := eng.now()
	candidates := []*domain.Anomaly{
		checkPriceDeviation(orgID, outcomes, eng.sweepWindowDays, detectedAt),
		checkSlowSales(orgID, outcomes, eng.sweepWindowDays, detectedAt),
		checkReturnRate(orgID, outcomes, eng.sweepWindowDays, detectedAt),
	}

	var (
		created int
		errs    []error
	)
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		isNew, upsertErr := eng.upsertAnomaly(ctx, cand)
		if upsertErr != nil {
			errs = append(errs, upsertErr)
			continue
		}
		if isNew {
			created++
		}
	}

	return created, errors.Join(errs...)
}

// upsertAnomaly applies the dedup rule: at most one unresolved anomaly per
// (org, type). An existing open record absorbs the new evidence in place
// and does not count as a detection.
func (eng *Engine) upsertAnomaly(ctx context.Context, cand *domain.Anomaly) (bool, error) {
	existing, err := eng.store.GetOpenAnomaly(ctx, cand.OrgID, cand.Type)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("looking up open anomaly: %w", err)
	}

	if existing != nil {
		err := eng.store.UpdateAnomalyEvidence(ctx, existing.ID,
			cand.Severity, cand.Description, cand.AffectedItemIDs,
			cand.Pattern, cand.DetectedAt)
		if err != nil {
			return false, fmt.Errorf("refreshing anomaly evidence: %w", err)
		}
		metrics.AnomaliesDetectedTotal.WithLabelValues(string(cand.Type)).Inc()
		return false, nil
	}

	if err := eng.store.CreateAnomaly(ctx, cand); err != nil {
		return false, fmt.Errorf("creating anomaly: %w", err)
	}
	if cand.ID == "" {
		// Lost a race with a concurrent sweep; the winner's open record
		// stands and this detection is a refresh at most.
		return false, nil
	}

	metrics.AnomaliesDetectedTotal.WithLabelValues(string(cand.Type)).Inc()

	if nerr := eng.notifier.SendAnomaly(ctx, cand); nerr != nil {
		eng.log.Error("anomaly notification failed",
			"anomaly_id", cand.ID,
			"error", nerr,
		)
	}

	return true, nil
}

// ResolveAnomaly closes an open anomaly exactly once. Resolving an unknown
// or already-resolved anomaly returns ErrAnomalyNotFound.
func (eng *Engine) ResolveAnomaly(
	ctx context.Context,
	orgID, anomalyID, notes, resolvedBy string,
) (*domain.Anomaly, error) {
	a, err := eng.store.ResolveAnomaly(ctx, orgID, anomalyID, notes, resolvedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnomalyNotFound
		}
		return nil, fmt.Errorf("resolving anomaly: %w", err)
	}
	return a, nil
}

func checkPriceDeviation(orgID string, outcomes []domain.Outcome, windowDays int, detectedAt time.Time) *domain.Anomaly {
	// The minimum applies to outcomes examined, not ratio-bearing ones:
	// the mean is taken over however many defined ratios the window holds.
	if len(outcomes) < priceDevMinSamples {
		return nil
	}

	var (
		sum      float64
		n        int
		affected []string
	)
	for i := range outcomes {
		r := outcomes[i].PriceAccuracyRatio
		if r == nil {
			continue
		}
		sum += *r
		n++
		if *r > priceDevThreshold {
			affected = append(affected, outcomes[i].ItemID)
		}
	}
	if n == 0 {
		return nil
	}

	mean := sum / float64(n)
	if mean <= priceDevThreshold {
		return nil
	}

	sev := domain.SeverityInfo
	if mean > priceDevWarning {
		sev = domain.SeverityWarning
	}

	pattern, _ := json.Marshal(domain.PriceDeviationPattern{
		AvgDeviation: mean,
		SampleSize:   n,
		WindowDays:   windowDays,
	})

	return &domain.Anomaly{
		OrgID:    orgID,
		Type:     domain.AnomalyPriceDeviation,
		Severity: sev,
		Description: fmt.Sprintf(
			"price predictions deviate %.0f%% from sale prices on average (%d samples over %d days)",
			mean*100, n, windowDays),
		AffectedItemIDs: affected,
		Pattern:         pattern,
		SuggestedAction: "review pricing research for recent listings; comparable selection may be stale",
		DetectedAt:      detectedAt,
	}
}

func checkSlowSales(orgID string, outcomes []domain.Outcome, windowDays int, detectedAt time.Time) *domain.Anomaly {
	var (
		sum      float64
		n        int
		affected []string
	)
	for i := range outcomes {
		d := outcomes[i].DaysToSell
		if d == nil {
			continue
		}
		sum += float64(*d)
		n++
		if float64(*d) > slowSalesMeanDays {
			affected = append(affected, outcomes[i].ItemID)
		}
	}
	if n < slowSalesMinSamples {
		return nil
	}

	mean := sum / float64(n)
	if mean <= slowSalesMeanDays {
		return nil
	}

	sev := domain.SeverityInfo
	if mean > slowSalesWarningDays {
		sev = domain.SeverityWarning
	}

	pattern, _ := json.Marshal(domain.SlowSalesPattern{
		AvgDaysToSell: mean,
		SampleSize:    n,
		WindowDays:    windowDays,
	})

	return &domain.Anomaly{
		OrgID:    orgID,
		Type:     domain.AnomalySlowSales,
		Severity: sev,
		Description: fmt.Sprintf(
			"items take %.0f days to sell on average (%d samples over %d days)",
			mean, n, windowDays),
		AffectedItemIDs: affected,
		Pattern:         pattern,
		SuggestedAction: "predicted price bands may be set too high for current demand",
		DetectedAt:      detectedAt,
	}
}

func checkReturnRate(orgID string, outcomes []domain.Outcome, windowDays int, detectedAt time.Time) *domain.Anomaly {
	total := len(outcomes)
	if total < returnRateMinOutcomes {
		return nil
	}

	var (
		returns  int
		affected []string
	)
	for i := range outcomes {
		if outcomes[i].WasReturned {
			returns++
			affected = append(affected, outcomes[i].ItemID)
		}
	}

	rate := float64(returns) / float64(total)
	if rate <= returnRateThreshold {
		return nil
	}

	sev := domain.SeverityWarning
	if rate > returnRateCritical {
		sev = domain.SeverityCritical
	}

	pattern, _ := json.Marshal(domain.ReturnRatePattern{
		ReturnRate: rate,
		Returns:    returns,
		SampleSize: total,
		WindowDays: windowDays,
	})

	return &domain.Anomaly{
		OrgID:    orgID,
		Type:     domain.AnomalyCategoryMisid,
		Severity: sev,
		Description: fmt.Sprintf(
			"%.0f%% of sold items were returned (%d of %d over %d days)",
			rate*100, returns, total, windowDays),
		AffectedItemIDs: affected,
		Pattern:         pattern,
		SuggestedAction: "audit item identification; buyers may be receiving items that do not match listings",
		DetectedAt:      detectedAt,
	}
}
