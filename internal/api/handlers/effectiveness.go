package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/sells-group/learning-loop/pkg/types"
)

const defaultTrendMonths = 6

// EffectivenessProvider defines the store methods required by the
// effectiveness handler.
type EffectivenessProvider interface {
	ListCurrentEffectiveness(ctx context.Context, orgID string, periodStart time.Time) ([]domain.EffectivenessRecord, error)
	ListEffectivenessTrend(ctx context.Context, orgID string, toolType domain.ToolType, months int) ([]domain.EffectivenessRecord, error)
}

// EffectivenessHandler handles tool effectiveness query endpoints.
type EffectivenessHandler struct {
	store EffectivenessProvider
	now   func() time.Time
}

// EffectivenessOption configures the EffectivenessHandler.
type EffectivenessOption func(*EffectivenessHandler)

// WithEffectivenessNowFunc overrides the clock. Used by tests.
func WithEffectivenessNowFunc(f func() time.Time) EffectivenessOption {
	return func(h *EffectivenessHandler) {
		h.now = f
	}
}

// NewEffectivenessHandler creates a new EffectivenessHandler.
func NewEffectivenessHandler(s EffectivenessProvider, opts ...EffectivenessOption) *EffectivenessHandler {
	h := &EffectivenessHandler{store: s, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ToolEffectiveness is one tool's aggregate bucket plus its derived means.
type ToolEffectiveness struct {
	domain.EffectivenessRecord
	AvgConfidence      float64 `json:"avg_confidence"`
	AvgAccuracy        float64 `json:"avg_accuracy"`
	AvgPriceDeviation  float64 `json:"avg_price_deviation"`
	IdentificationRate float64 `json:"identification_rate"`
}

func toToolEffectiveness(records []domain.EffectivenessRecord) []ToolEffectiveness {
	out := make([]ToolEffectiveness, len(records))
	for i := range records {
		r := records[i]
		out[i] = ToolEffectiveness{
			EffectivenessRecord: r,
			AvgConfidence:       r.AvgConfidence(),
			AvgAccuracy:         r.AvgAccuracy(),
			AvgPriceDeviation:   r.AvgPriceDeviation(),
			IdentificationRate:  r.IdentificationRate(),
		}
	}
	return out
}

// --- Input/Output types ---

// GetEffectivenessInput is the input for the current-month effectiveness view.
type GetEffectivenessInput struct {
	Org string `path:"org" doc:"Organization ID (or \"global\")"`
}

// GetEffectivenessOutput is the current-month effectiveness response.
type GetEffectivenessOutput struct {
	Body struct {
		OrgID       string              `json:"org_id"`
		PeriodStart time.Time           `json:"period_start"`
		Tools       []ToolEffectiveness `json:"tools"`
	}
}

// GetTrendInput is the input for a tool's month-over-month trend.
type GetTrendInput struct {
	Org    string `path:"org"    doc:"Organization ID (or \"global\")"`
	Tool   string `path:"tool"   doc:"Research tool type"              enum:"market_search,price_comps,image_analysis,category_lookup,barcode_lookup,web_search"`
	Months int    `query:"months" doc:"Number of months (default 6)"   minimum:"1" maximum:"24"`
}

// GetTrendOutput is the trend response, oldest month first.
type GetTrendOutput struct {
	Body struct {
		OrgID    string              `json:"org_id"`
		ToolType domain.ToolType     `json:"tool_type"`
		Months   int                 `json:"months"`
		Periods  []ToolEffectiveness `json:"periods"`
	}
}

// --- Handlers ---

// GetEffectiveness returns the current month's per-tool aggregates for an
// organization scope.
func (h *EffectivenessHandler) GetEffectiveness(
	ctx context.Context,
	input *GetEffectivenessInput,
) (*GetEffectivenessOutput, error) {
	periodStart := domain.MonthStart(h.now())

	records, err := h.store.ListCurrentEffectiveness(ctx, input.Org, periodStart)
	if err != nil {
		return nil, huma.Error500InternalServerError("effectiveness query failed: " + err.Error())
	}

	resp := &GetEffectivenessOutput{}
	resp.Body.OrgID = input.Org
	resp.Body.PeriodStart = periodStart
	resp.Body.Tools = toToolEffectiveness(records)

	return resp, nil
}

// GetTrend returns one tool's monthly aggregates over a trailing window.
func (h *EffectivenessHandler) GetTrend(
	ctx context.Context,
	input *GetTrendInput,
) (*GetTrendOutput, error) {
	months := input.Months
	if months == 0 {
		months = defaultTrendMonths
	}

	tool := domain.ToolType(input.Tool)
	records, err := h.store.ListEffectivenessTrend(ctx, input.Org, tool, months)
	if err != nil {
		return nil, huma.Error500InternalServerError("trend query failed: " + err.Error())
	}

	resp := &GetTrendOutput{}
	resp.Body.OrgID = input.Org
	resp.Body.ToolType = tool
	resp.Body.Months = months
	resp.Body.Periods = toToolEffectiveness(records)

	return resp, nil
}

// RegisterEffectivenessRoutes registers effectiveness endpoints with the
// Huma API.
func RegisterEffectivenessRoutes(api huma.API, h *EffectivenessHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-effectiveness",
		Method:      http.MethodGet,
		Path:        "/api/v1/orgs/{org}/effectiveness",
		Summary:     "Get current tool effectiveness",
		Description: "Returns the current calendar month's per-tool effectiveness aggregates for an organization scope.",
		Tags:        []string{"effectiveness"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetEffectiveness)

	huma.Register(api, huma.Operation{
		OperationID: "get-effectiveness-trend",
		Method:      http.MethodGet,
		Path:        "/api/v1/orgs/{org}/effectiveness/{tool}/trend",
		Summary:     "Get a tool's effectiveness trend",
		Description: "Returns one tool's monthly effectiveness aggregates over a trailing window, oldest first.",
		Tags:        []string{"effectiveness"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetTrend)
}
