package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// applyOutcome folds one freshly created outcome into the current period's
// effectiveness buckets, one atomic upsert per tool used. Aggregation is
// deliberately not idempotent: each outcome must be applied exactly once,
// which RecordSale guarantees by aggregating immediately after the insert.
func (eng *Engine) applyOutcome(ctx context.Context, o *domain.Outcome) error {
	scope := effectivenessScope(o.OrgID)
	periodStart := domain.MonthStart(o.SoldAt)
	periodEnd := domain.MonthEnd(o.SoldAt)

	var errs []error
	for _, u := range o.ToolsUsed {
		d := &store.EffectivenessDelta{
			OrgID:       scope,
			ToolType:    u.ToolType,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Uses:        1,
			Sales:       1,
			Confidence:  u.Confidence,
		}

		if o.PriceAccuracyRatio != nil {
			d.PriceDeviation = o.PriceAccuracyRatio
			d.Accuracy = math.Max(0, 1-*o.PriceAccuracyRatio)
		}

		if o.IdentificationCorrect != nil {
			d.IdentificationJudged = true
			d.IdentificationCorrect = *o.IdentificationCorrect
		}

		if err := eng.store.ApplyEffectivenessDelta(ctx, d); err != nil {
			errs = append(errs, fmt.Errorf("tool %s: %w", u.ToolType, err))
		}
	}

	return errors.Join(errs...)
}

// applyReturn bumps the return contribution for each tool that fed the
// outcome's research. The bucket is keyed by the sale month, matching where
// the sale was aggregated; a missing bucket drops the increment silently
// rather than creating a record with no uses behind it.
func (eng *Engine) applyReturn(ctx context.Context, o *domain.Outcome) error {
	scope := effectivenessScope(o.OrgID)
	periodStart := domain.MonthStart(o.SoldAt)

	var errs []error
	for _, u := range o.ToolsUsed {
		if err := eng.store.IncrementReturnContribution(ctx, scope, u.ToolType, periodStart); err != nil {
			errs = append(errs, fmt.Errorf("tool %s: %w", u.ToolType, err))
		}
	}

	return errors.Join(errs...)
}
