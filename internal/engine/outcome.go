package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sells-group/learning-loop/internal/metrics"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint hit.
const pgUniqueViolation = "23505"

// SaleEvent is a marketplace sale notification for a tracked listing.
type SaleEvent struct {
	ListingID   string
	SoldPrice   float64
	SoldAt      time.Time
	Marketplace string
}

// ReturnEvent is a marketplace return notification for a sold listing.
type ReturnEvent struct {
	ListingID  string
	ReturnedAt time.Time
	Reason     string
}

// RecordSale converts a sale event plus the listing's research snapshot into
// an immutable outcome, then folds it into the effectiveness aggregates.
// The outcome is persisted first; aggregation is best effort and never
// fails the call once the outcome is durable.
func (eng *Engine) RecordSale(ctx context.Context, ev *SaleEvent) (*domain.Outcome, error) {
	snapshot, err := eng.store.GetListingResearch(ctx, ev.ListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("fetching listing research: %w", err)
	}

	usages, err := eng.tools.ToolsFor(ctx, ev.ListingID)
	if err != nil {
		// Research-run linkage is best effort.
		eng.log.Warn("tool usage lookup failed, recording without linkage",
			"listing_id", ev.ListingID,
			"error", err,
		)
		usages = nil
	}

	soldAt := ev.SoldAt
	if soldAt.IsZero() {
		soldAt = eng.now()
	}

	o := &domain.Outcome{
		OrgID:     snapshot.OrgID,
		ItemID:    snapshot.ItemID,
		ListingID: snapshot.ListingID,

		PredictedFloor:     snapshot.PredictedFloor,
		PredictedTarget:    snapshot.PredictedTarget,
		PredictedCeiling:   snapshot.PredictedCeiling,
		PredictedCategory:  snapshot.Category,
		PredictedBrand:     snapshot.Brand,
		PredictedModel:     snapshot.Model,
		ResearchConfidence: snapshot.ResearchConfidence,
		ToolsUsed:          usages,

		ListedPrice: snapshot.ListedPrice,
		SoldPrice:   ev.SoldPrice,
		ListedAt:    snapshot.ListedAt,
		SoldAt:      soldAt,
		Marketplace: ev.Marketplace,
	}

	if snapshot.ListedAt != nil {
		// Floor division to whole days; inconsistent timestamps yield
		// negative values, which are stored as-is.
		d := domain.DaysBetween(*snapshot.ListedAt, soldAt)
		o.DaysToSell = &d
	}

	o.ComputeDerived()

	if err := eng.store.CreateOutcome(ctx, o); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateOutcome
		}
		return nil, fmt.Errorf("creating outcome: %w", err)
	}

	metrics.OutcomesRecordedTotal.Inc()
	metrics.OutcomeQualityTotal.WithLabelValues(string(o.Quality)).Inc()

	if err := eng.applyOutcome(ctx, o); err != nil {
		metrics.AggregationFailuresTotal.Inc()
		eng.log.Error("effectiveness aggregation failed",
			"outcome_id", o.ID,
			"error", err,
		)
	}

	eng.checkOutcome(o)

	return o, nil
}

// RecordReturn marks a previously recorded outcome as returned, forcing its
// quality to poor, and bumps the per-tool return counters. A return for an
// unknown or already-returned outcome is logged and dropped: returns may
// race ahead of outcome creation in distributed delivery.
func (eng *Engine) RecordReturn(ctx context.Context, ev *ReturnEvent) error {
	o, err := eng.store.GetOutcomeByListing(ctx, ev.ListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			eng.log.Warn("return event for unknown outcome, dropping",
				"listing_id", ev.ListingID,
			)
			return nil
		}
		return fmt.Errorf("fetching outcome for return: %w", err)
	}

	returnedAt := ev.ReturnedAt
	if returnedAt.IsZero() {
		returnedAt = eng.now()
	}

	updated, err := eng.store.MarkOutcomeReturned(ctx, o.ID, ev.Reason, returnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			eng.log.Warn("outcome already marked returned",
				"outcome_id", o.ID,
				"listing_id", ev.ListingID,
			)
			return nil
		}
		return fmt.Errorf("marking outcome returned: %w", err)
	}

	metrics.ReturnsRecordedTotal.Inc()

	if err := eng.applyReturn(ctx, updated); err != nil {
		metrics.AggregationFailuresTotal.Inc()
		eng.log.Error("return aggregation failed",
			"outcome_id", updated.ID,
			"error", err,
		)
	}

	return nil
}

// CorrectIdentification sets the nullable identification-correct flag on an
// outcome. The flag feeds the identification accumulators of outcomes
// aggregated after the correction; there is no retroactive re-aggregation.
func (eng *Engine) CorrectIdentification(
	ctx context.Context,
	orgID, outcomeID string,
	correct bool,
) (*domain.Outcome, error) {
	o, err := eng.store.SetIdentificationCorrect(ctx, orgID, outcomeID, correct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("setting identification correctness: %w", err)
	}
	return o, nil
}
