package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sells-group/learning-loop/internal/metrics"
	"github.com/sells-group/learning-loop/pkg/calibrate"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// toolAggregate pools one tool's effectiveness records across all scopes in
// the lookback window.
type toolAggregate struct {
	confidenceSum   float64
	confidenceCount int
	accuracySum     float64
	latestWeight    float64
	latestPeriod    time.Time
	hasCurrentMonth bool
}

// Recalibrate reads the lookback window's aggregated statistics and adjusts
// each tool's confidence weight by the bounded rule in pkg/calibrate.
// Calibration is global: organization-level records are pooled per tool.
//
// A store write failure aborts the remainder of the run; results for tools
// already committed are returned alongside the error, and their weights
// stand. A concurrent run returns ErrCalibrationRunning.
func (eng *Engine) Recalibrate(
	ctx context.Context,
	trigger domain.CalibrationTrigger,
	actorID string,
) ([]domain.CalibrationResult, error) {
	if !eng.calibMu.TryLock() {
		return nil, ErrCalibrationRunning
	}
	defer eng.calibMu.Unlock()

	now := eng.now()
	cutoff := now.AddDate(0, 0, -eng.lookbackDays)
	currentMonth := domain.MonthStart(now)

	records, err := eng.store.ListEffectivenessSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fetching effectiveness records: %w", err)
	}

	aggs := make(map[domain.ToolType]*toolAggregate)
	for i := range records {
		r := &records[i]
		a, ok := aggs[r.ToolType]
		if !ok {
			a = &toolAggregate{latestWeight: 1.0}
			aggs[r.ToolType] = a
		}
		a.confidenceSum += r.ConfidenceSum
		a.confidenceCount += r.ConfidenceCount
		a.accuracySum += r.ActualAccuracySum
		if a.latestPeriod.IsZero() || r.PeriodStart.After(a.latestPeriod) {
			a.latestPeriod = r.PeriodStart
			a.latestWeight = r.CurrentWeight
		}
		if r.PeriodStart.Equal(currentMonth) {
			a.hasCurrentMonth = true
		}
	}

	tools := make([]domain.ToolType, 0, len(aggs))
	for tool := range aggs {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i] < tools[j] })

	var results []domain.CalibrationResult
	for _, tool := range tools {
		a := aggs[tool]
		if a.confidenceCount < calibrate.MinDataPoints {
			eng.log.Debug("skipping tool, insufficient calibration data",
				"tool", tool,
				"samples", a.confidenceCount,
			)
			continue
		}

		sample := calibrate.Sample{
			AvgConfidence: a.confidenceSum / float64(a.confidenceCount),
			AvgAccuracy:   a.accuracySum / float64(a.confidenceCount),
			DataPoints:    a.confidenceCount,
			CurrentWeight: a.latestWeight,
		}
		res := calibrate.Calibrate(sample)

		// Suggested weight and score stamp every matched record for trend
		// continuity; the live weight moves only on the current month.
		if err := eng.store.ApplyCalibration(ctx, tool, cutoff, res.NewWeight, res.Score, now); err != nil {
			return results, fmt.Errorf("applying calibration for %s: %w", tool, err)
		}
		if a.hasCurrentMonth {
			if err := eng.store.SetToolWeight(ctx, tool, currentMonth, res.NewWeight); err != nil {
				return results, fmt.Errorf("setting current weight for %s: %w", tool, err)
			}
		}

		metrics.ToolWeight.WithLabelValues(string(tool)).Set(res.NewWeight)

		results = append(results, domain.CalibrationResult{
			ToolType:         tool,
			CalibrationScore: res.Score,
			AvgConfidence:    sample.AvgConfidence,
			AvgAccuracy:      sample.AvgAccuracy,
			DataPoints:       a.confidenceCount,
			PreviousWeight:   a.latestWeight,
			NewWeight:        res.NewWeight,
			Reasoning:        res.Reasoning,
		})

		eng.log.Info("tool calibrated",
			"tool", tool,
			"score", res.Score,
			"previous_weight", a.latestWeight,
			"new_weight", res.NewWeight,
		)
	}

	metrics.CalibrationRunsTotal.Inc()

	run := domain.CalibrationRun{
		CalibratedAt: now,
		Trigger:      trigger,
		ActorID:      actorID,
		LookbackDays: eng.lookbackDays,
		Results:      results,
	}
	eng.appendHistory(run)

	// The durable run record is best effort; the in-process history and the
	// committed weights are already in place.
	if err := eng.store.InsertCalibrationRun(ctx, &run); err != nil {
		eng.log.Error("persisting calibration run failed", "error", err)
	}

	return results, nil
}

func (eng *Engine) appendHistory(run domain.CalibrationRun) {
	eng.histMu.Lock()
	defer eng.histMu.Unlock()

	eng.history = append([]domain.CalibrationRun{run}, eng.history...)
	if len(eng.history) > historyCap {
		eng.history = eng.history[:historyCap]
	}
}

// History returns the in-process calibration history, newest first. The
// slice is a copy; callers may not mutate engine state through it.
func (eng *Engine) History() []domain.CalibrationRun {
	eng.histMu.Lock()
	defer eng.histMu.Unlock()

	out := make([]domain.CalibrationRun, len(eng.history))
	copy(out, eng.history)
	return out
}
