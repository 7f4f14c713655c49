package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// OutcomesProvider defines the store methods required by the outcomes handler.
type OutcomesProvider interface {
	ListOutcomes(ctx context.Context, opts *store.OutcomeQuery) ([]domain.Outcome, int, error)
	GetOutcome(ctx context.Context, orgID, id string) (*domain.Outcome, error)
}

// IdentificationCorrector defines the engine operation for manual
// identification correction.
type IdentificationCorrector interface {
	CorrectIdentification(ctx context.Context, orgID, outcomeID string, correct bool) (*domain.Outcome, error)
}

// OutcomesHandler handles outcome query and correction endpoints.
type OutcomesHandler struct {
	store     OutcomesProvider
	corrector IdentificationCorrector
}

// NewOutcomesHandler creates a new OutcomesHandler.
func NewOutcomesHandler(s OutcomesProvider, c IdentificationCorrector) *OutcomesHandler {
	return &OutcomesHandler{store: s, corrector: c}
}

// --- Input/Output types ---

// ListOutcomesInput is the input for listing an organization's outcomes.
type ListOutcomesInput struct {
	Org         string    `path:"org"          doc:"Organization ID"`
	Quality     string    `query:"quality"     doc:"Filter by quality grade"          enum:"excellent,good,fair,poor,"`
	Marketplace string    `query:"marketplace" doc:"Filter by marketplace"`
	Returned    string    `query:"returned"    doc:"Filter by returned flag"          enum:"true,false,"`
	Since       time.Time `query:"since"       doc:"Only outcomes sold at or after this time"`
	Limit       int       `query:"limit"       doc:"Number of results (default 50)"   minimum:"1" maximum:"500"`
	Offset      int       `query:"offset"      doc:"Pagination offset"                minimum:"0"`
	OrderBy     string    `query:"order_by"    doc:"Sort field"                       enum:"sold_at,recorded_at,sold_price,"`
}

// ListOutcomesOutput is the response for listing outcomes.
type ListOutcomesOutput struct {
	Body struct {
		Outcomes []domain.Outcome `json:"outcomes"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetOutcomeInput is the input for getting a single outcome.
type GetOutcomeInput struct {
	Org string `path:"org" doc:"Organization ID"`
	ID  string `path:"id"  doc:"Outcome UUID"`
}

// GetOutcomeOutput is the response for getting a single outcome.
type GetOutcomeOutput struct {
	Body domain.Outcome
}

// CorrectIdentificationInput is the input for a manual identification
// correction.
type CorrectIdentificationInput struct {
	Org  string `path:"org" doc:"Organization ID"`
	ID   string `path:"id"  doc:"Outcome UUID"`
	Body struct {
		Correct bool `json:"correct" doc:"Whether the predicted identification was correct"`
	}
}

// CorrectIdentificationOutput is the response for a correction.
type CorrectIdentificationOutput struct {
	Body domain.Outcome
}

// --- Handlers ---

// ListOutcomes returns an organization's outcomes with optional filters.
func (h *OutcomesHandler) ListOutcomes(
	ctx context.Context,
	input *ListOutcomesInput,
) (*ListOutcomesOutput, error) {
	q := &store.OutcomeQuery{
		OrgID:   input.Org,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Quality != "" {
		q.Quality = &input.Quality
	}

	if input.Marketplace != "" {
		q.Marketplace = &input.Marketplace
	}

	if input.Returned != "" {
		returned := input.Returned == "true"
		q.Returned = &returned
	}

	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	outcomes, total, err := h.store.ListOutcomes(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("outcome query failed: " + err.Error())
	}

	if outcomes == nil {
		outcomes = []domain.Outcome{}
	}

	resp := &ListOutcomesOutput{}
	resp.Body.Outcomes = outcomes
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetOutcome returns a single outcome by ID within an organization.
func (h *OutcomesHandler) GetOutcome(
	ctx context.Context,
	input *GetOutcomeInput,
) (*GetOutcomeOutput, error) {
	o, err := h.store.GetOutcome(ctx, input.Org, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("outcome not found")
	}

	return &GetOutcomeOutput{Body: *o}, nil
}

// CorrectIdentification sets the identification-correct flag on an outcome.
func (h *OutcomesHandler) CorrectIdentification(
	ctx context.Context,
	input *CorrectIdentificationInput,
) (*CorrectIdentificationOutput, error) {
	o, err := h.corrector.CorrectIdentification(ctx, input.Org, input.ID, input.Body.Correct)
	if err != nil {
		if errors.Is(err, engine.ErrOutcomeNotFound) {
			return nil, huma.Error404NotFound("outcome not found")
		}
		return nil, huma.Error500InternalServerError("identification correction failed: " + err.Error())
	}

	return &CorrectIdentificationOutput{Body: *o}, nil
}

// RegisterOutcomeRoutes registers outcome endpoints with the Huma API.
func RegisterOutcomeRoutes(api huma.API, h *OutcomesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-outcomes",
		Method:      http.MethodGet,
		Path:        "/api/v1/orgs/{org}/outcomes",
		Summary:     "List outcomes",
		Description: "Returns an organization's outcomes with optional quality, marketplace, returned, and time filters.",
		Tags:        []string{"outcomes"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListOutcomes)

	huma.Register(api, huma.Operation{
		OperationID: "get-outcome",
		Method:      http.MethodGet,
		Path:        "/api/v1/orgs/{org}/outcomes/{id}",
		Summary:     "Get an outcome by ID",
		Description: "Returns a single outcome by its UUID.",
		Tags:        []string{"outcomes"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetOutcome)

	huma.Register(api, huma.Operation{
		OperationID: "correct-identification",
		Method:      http.MethodPost,
		Path:        "/api/v1/orgs/{org}/outcomes/{id}/identification",
		Summary:     "Correct an outcome's identification",
		Description: "Sets whether the predicted identification was correct. Feeds future aggregation only.",
		Tags:        []string{"outcomes"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CorrectIdentification)
}
