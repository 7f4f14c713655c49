package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/learning-loop/internal/api/handlers"
	"github.com/sells-group/learning-loop/internal/engine"
	"github.com/sells-group/learning-loop/internal/store"
	storeMocks "github.com/sells-group/learning-loop/internal/store/mocks"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// mockResolver is a test double for AnomalyResolver.
type mockResolver struct {
	anomaly *domain.Anomaly
	err     error

	gotOrg   string
	gotID    string
	gotNotes string
	gotBy    string
}

func (m *mockResolver) ResolveAnomaly(
	_ context.Context,
	orgID, anomalyID, notes, resolvedBy string,
) (*domain.Anomaly, error) {
	m.gotOrg, m.gotID, m.gotNotes, m.gotBy = orgID, anomalyID, notes, resolvedBy
	if m.err != nil {
		return nil, m.err
	}
	return m.anomaly, nil
}

func TestListOrgAnomalies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "defaults to unresolved",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnomalies(mock.Anything, mock.MatchedBy(func(q *store.AnomalyQuery) bool {
						return q.OrgID == "org-1" && !q.IncludeResolved
					})).
					Return([]domain.Anomaly{
						{ID: "an-1", Type: domain.AnomalyPriceDeviation, Severity: domain.SeverityWarning},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"anomaly_type":"price_deviation"`,
		},
		{
			name:  "type and severity filters",
			query: "?type=slow_sales&severity=info",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnomalies(mock.Anything, mock.MatchedBy(func(q *store.AnomalyQuery) bool {
						return q.Type != nil && *q.Type == "slow_sales" &&
							q.Severity != nil && *q.Severity == "info"
					})).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"anomalies":[]`,
		},
		{
			name:  "include resolved",
			query: "?include_resolved=true",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnomalies(mock.Anything, mock.MatchedBy(func(q *store.AnomalyQuery) bool {
						return q.IncludeResolved
					})).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnomalies(mock.Anything, mock.Anything).
					Return(nil, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "anomaly query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			h := handlers.NewAnomaliesHandler(ms, &mockResolver{})

			_, api := humatest.New(t)
			handlers.RegisterAnomalyRoutes(api, h)

			resp := api.Get("/api/v1/orgs/org-1/anomalies" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestListAllAnomalies(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListAnomalies(mock.Anything, mock.MatchedBy(func(q *store.AnomalyQuery) bool {
			return q.OrgID == ""
		})).
		Return([]domain.Anomaly{
			{ID: "an-1", OrgID: "org-1"},
			{ID: "an-2", OrgID: "org-2"},
		}, nil).
		Once()

	h := handlers.NewAnomaliesHandler(ms, &mockResolver{})

	_, api := humatest.New(t)
	handlers.RegisterAnomalyRoutes(api, h)

	resp := api.Get("/api/v1/anomalies")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"an-1"`)
	assert.Contains(t, resp.Body.String(), `"an-2"`)
}

func TestResolveAnomaly_Handler(t *testing.T) {
	t.Parallel()

	mr := &mockResolver{anomaly: &domain.Anomaly{ID: "an-1", OrgID: "org-1", Resolved: true}}
	h := handlers.NewAnomaliesHandler(storeMocks.NewMockStore(t), mr)

	_, api := humatest.New(t)
	handlers.RegisterAnomalyRoutes(api, h)

	resp := api.Post("/api/v1/orgs/org-1/anomalies/an-1/resolve", map[string]any{
		"notes":       "comps refreshed",
		"resolved_by": "admin-1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"resolved":true`)

	assert.Equal(t, "org-1", mr.gotOrg)
	assert.Equal(t, "an-1", mr.gotID)
	assert.Equal(t, "comps refreshed", mr.gotNotes)
	assert.Equal(t, "admin-1", mr.gotBy)
}

func TestResolveAnomaly_Handler_NotFound(t *testing.T) {
	t.Parallel()

	mr := &mockResolver{err: engine.ErrAnomalyNotFound}
	h := handlers.NewAnomaliesHandler(storeMocks.NewMockStore(t), mr)

	_, api := humatest.New(t)
	handlers.RegisterAnomalyRoutes(api, h)

	resp := api.Post("/api/v1/orgs/org-1/anomalies/an-1/resolve", map[string]any{})
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "already resolved")
}
