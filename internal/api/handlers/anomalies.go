package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/store"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// AnomaliesProvider defines the store methods required by the anomalies
// handler.
type AnomaliesProvider interface {
	ListAnomalies(ctx context.Context, opts *store.AnomalyQuery) ([]domain.Anomaly, error)
}

// AnomalyResolver defines the engine operation for resolving an anomaly.
type AnomalyResolver interface {
	ResolveAnomaly(ctx context.Context, orgID, anomalyID, notes, resolvedBy string) (*domain.Anomaly, error)
}

// AnomaliesHandler handles anomaly query and resolution endpoints.
type AnomaliesHandler struct {
	store    AnomaliesProvider
	resolver AnomalyResolver
}

// NewAnomaliesHandler creates a new AnomaliesHandler.
func NewAnomaliesHandler(s AnomaliesProvider, r AnomalyResolver) *AnomaliesHandler {
	return &AnomaliesHandler{store: s, resolver: r}
}

// --- Input/Output types ---

// ListOrgAnomaliesInput is the input for listing one organization's anomalies.
type ListOrgAnomaliesInput struct {
	Org             string `path:"org"               doc:"Organization ID"`
	Type            string `query:"type"             doc:"Filter by anomaly type"     enum:"price_deviation,slow_sales,category_misidentification,tool_failure,"`
	Severity        string `query:"severity"         doc:"Filter by severity"         enum:"info,warning,critical,"`
	IncludeResolved bool   `query:"include_resolved" doc:"Include resolved anomalies"`
	Limit           int    `query:"limit"            doc:"Number of results"          minimum:"1" maximum:"500"`
}

// ListAllAnomaliesInput is the input for the cross-organization admin view.
type ListAllAnomaliesInput struct {
	Type            string `query:"type"             doc:"Filter by anomaly type"     enum:"price_deviation,slow_sales,category_misidentification,tool_failure,"`
	Severity        string `query:"severity"         doc:"Filter by severity"         enum:"info,warning,critical,"`
	IncludeResolved bool   `query:"include_resolved" doc:"Include resolved anomalies"`
	Limit           int    `query:"limit"            doc:"Number of results"          minimum:"1" maximum:"500"`
}

// ListAnomaliesOutput is the response for anomaly listings.
type ListAnomaliesOutput struct {
	Body struct {
		Anomalies []domain.Anomaly `json:"anomalies"`
	}
}

// ResolveAnomalyInput is the input for resolving an anomaly.
type ResolveAnomalyInput struct {
	Org  string `path:"org" doc:"Organization ID"`
	ID   string `path:"id"  doc:"Anomaly UUID"`
	Body struct {
		Notes      string `json:"notes,omitempty"       doc:"Resolution notes"`
		ResolvedBy string `json:"resolved_by,omitempty" doc:"Operator resolving the anomaly"`
	}
}

// ResolveAnomalyOutput is the response for a resolved anomaly.
type ResolveAnomalyOutput struct {
	Body domain.Anomaly
}

// --- Handlers ---

func (h *AnomaliesHandler) listAnomalies(
	ctx context.Context,
	q *store.AnomalyQuery,
) (*ListAnomaliesOutput, error) {
	anomalies, err := h.store.ListAnomalies(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("anomaly query failed: " + err.Error())
	}

	if anomalies == nil {
		anomalies = []domain.Anomaly{}
	}

	resp := &ListAnomaliesOutput{}
	resp.Body.Anomalies = anomalies
	return resp, nil
}

// ListOrgAnomalies returns one organization's anomalies, unresolved by
// default.
func (h *AnomaliesHandler) ListOrgAnomalies(
	ctx context.Context,
	input *ListOrgAnomaliesInput,
) (*ListAnomaliesOutput, error) {
	q := &store.AnomalyQuery{
		OrgID:           input.Org,
		IncludeResolved: input.IncludeResolved,
		Limit:           input.Limit,
	}
	if input.Type != "" {
		q.Type = &input.Type
	}
	if input.Severity != "" {
		q.Severity = &input.Severity
	}

	return h.listAnomalies(ctx, q)
}

// ListAllAnomalies returns anomalies across all organizations.
func (h *AnomaliesHandler) ListAllAnomalies(
	ctx context.Context,
	input *ListAllAnomaliesInput,
) (*ListAnomaliesOutput, error) {
	q := &store.AnomalyQuery{
		IncludeResolved: input.IncludeResolved,
		Limit:           input.Limit,
	}
	if input.Type != "" {
		q.Type = &input.Type
	}
	if input.Severity != "" {
		q.Severity = &input.Severity
	}

	return h.listAnomalies(ctx, q)
}

// ResolveAnomaly closes an open anomaly exactly once.
func (h *AnomaliesHandler) ResolveAnomaly(
	ctx context.Context,
	input *ResolveAnomalyInput,
) (*ResolveAnomalyOutput, error) {
	a, err := h.resolver.ResolveAnomaly(ctx, input.Org, input.ID, input.Body.Notes, input.Body.ResolvedBy)
	if err != nil {
		if errors.Is(err, engine.ErrAnomalyNotFound) {
			return nil, huma.Error404NotFound("anomaly not found or already resolved")
		}
		return nil, huma.Error500InternalServerError("resolving anomaly failed: " + err.Error())
	}

	return &ResolveAnomalyOutput{Body: *a}, nil
}

// RegisterAnomalyRoutes registers anomaly endpoints with the Huma API.
func RegisterAnomalyRoutes(api huma.API, h *AnomaliesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-org-anomalies",
		Method:      http.MethodGet,
		Path:        "/api/v1/orgs/{org}/anomalies",
		Summary:     "List an organization's anomalies",
		Description: "Returns detected research-quality anomalies for one organization, unresolved by default.",
		Tags:        []string{"anomalies"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListOrgAnomalies)

	huma.Register(api, huma.Operation{
		OperationID: "list-all-anomalies",
		Method:      http.MethodGet,
		Path:        "/api/v1/anomalies",
		Summary:     "List anomalies across organizations",
		Description: "Returns detected anomalies across all organizations, unresolved by default.",
		Tags:        []string{"anomalies"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListAllAnomalies)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-anomaly",
		Method:      http.MethodPost,
		Path:        "/api/v1/orgs/{org}/anomalies/{id}/resolve",
		Summary:     "Resolve an anomaly",
		Description: "Marks an open anomaly as resolved. Resolving twice returns 404.",
		Tags:        []string{"anomalies"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.ResolveAnomaly)
}
