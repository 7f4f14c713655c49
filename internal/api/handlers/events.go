package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sells-group/learning-loop/internal/engine"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// OutcomeRecorder defines the engine operations required by the events handler.
type OutcomeRecorder interface {
	RecordSale(ctx context.Context, ev *engine.SaleEvent) (*domain.Outcome, error)
	RecordReturn(ctx context.Context, ev *engine.ReturnEvent) error
}

// EventsHandler handles marketplace event ingress.
type EventsHandler struct {
	recorder OutcomeRecorder
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(r OutcomeRecorder) *EventsHandler {
	return &EventsHandler{recorder: r}
}

// RecordSaleInput is the request body for a sale event.
type RecordSaleInput struct {
	Body struct {
		ListingID   string     `json:"listing_id"            required:"true" doc:"Marketplace listing identifier"`
		SoldPrice   float64    `json:"sold_price"            required:"true" doc:"Final sale price"              minimum:"0"`
		SoldAt      *time.Time `json:"sold_at,omitempty"                     doc:"Sale timestamp (defaults to now)"`
		Marketplace string     `json:"marketplace,omitempty"                 doc:"Marketplace the item sold on"`
	}
}

// RecordSaleOutput is the response for a recorded sale.
type RecordSaleOutput struct {
	Body domain.Outcome
}

// RecordReturnInput is the request body for a return event.
type RecordReturnInput struct {
	Body struct {
		ListingID  string     `json:"listing_id"            required:"true" doc:"Marketplace listing identifier"`
		ReturnedAt *time.Time `json:"returned_at,omitempty"                 doc:"Return timestamp (defaults to now)"`
		Reason     string     `json:"reason,omitempty"                      doc:"Buyer-stated return reason"`
	}
}

// RecordReturnOutput is the response for an accepted return event.
type RecordReturnOutput struct {
	Body StatusResponse
}

// RecordSale converts a sale event into an outcome and returns it.
func (h *EventsHandler) RecordSale(
	ctx context.Context,
	input *RecordSaleInput,
) (*RecordSaleOutput, error) {
	ev := &engine.SaleEvent{
		ListingID:   input.Body.ListingID,
		SoldPrice:   input.Body.SoldPrice,
		Marketplace: input.Body.Marketplace,
	}
	if input.Body.SoldAt != nil {
		ev.SoldAt = *input.Body.SoldAt
	}

	o, err := h.recorder.RecordSale(ctx, ev)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrListingNotFound):
			return nil, huma.Error404NotFound("listing not found")
		case errors.Is(err, engine.ErrDuplicateOutcome):
			return nil, huma.Error409Conflict("outcome already recorded for listing")
		default:
			return nil, huma.Error500InternalServerError("recording sale failed: " + err.Error())
		}
	}

	return &RecordSaleOutput{Body: *o}, nil
}

// RecordReturn accepts a return event. Returns for unknown or already
// returned outcomes are accepted and dropped, so delivery retries are safe.
func (h *EventsHandler) RecordReturn(
	ctx context.Context,
	input *RecordReturnInput,
) (*RecordReturnOutput, error) {
	ev := &engine.ReturnEvent{
		ListingID: input.Body.ListingID,
		Reason:    input.Body.Reason,
	}
	if input.Body.ReturnedAt != nil {
		ev.ReturnedAt = *input.Body.ReturnedAt
	}

	if err := h.recorder.RecordReturn(ctx, ev); err != nil {
		return nil, huma.Error500InternalServerError("recording return failed: " + err.Error())
	}

	return &RecordReturnOutput{Body: StatusResponse{Status: "accepted"}}, nil
}

// RegisterEventRoutes registers event ingress endpoints with the Huma API.
func RegisterEventRoutes(api huma.API, h *EventsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-sale-event",
		Method:        http.MethodPost,
		Path:          "/api/v1/events/sale",
		Summary:       "Record a sale event",
		Description:   "Converts a marketplace sale notification into an immutable outcome and folds it into the effectiveness aggregates.",
		Tags:          []string{"events"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError},
	}, h.RecordSale)

	huma.Register(api, huma.Operation{
		OperationID:   "record-return-event",
		Method:        http.MethodPost,
		Path:          "/api/v1/events/return",
		Summary:       "Record a return event",
		Description:   "Marks the outcome for a listing as returned. Unknown listings are accepted and dropped.",
		Tags:          []string{"events"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusInternalServerError},
	}, h.RecordReturn)
}
