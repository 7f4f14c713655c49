package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestOutcomeQuery_ToSQL(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         OutcomeQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "org-only query uses defaults",
			query: OutcomeQuery{OrgID: "org-1"},
			wantDataHas: []string{
				"FROM outcomes",
				"WHERE org_id = $1",
				"ORDER BY sold_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantCountSQL: "SELECT COUNT(*) FROM outcomes WHERE org_id = $1",
			wantArgs:     []any{"org-1"},
		},
		{
			name: "quality filter",
			query: OutcomeQuery{
				OrgID:   "org-1",
				Quality: ptr("poor"),
			},
			wantDataHas:  []string{"quality = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM outcomes WHERE org_id = $1 AND quality = $2",
			wantArgs:     []any{"org-1", "poor"},
		},
		{
			name: "marketplace filter",
			query: OutcomeQuery{
				OrgID:       "org-1",
				Marketplace: ptr("ebay"),
			},
			wantDataHas: []string{"marketplace = $2"},
			wantArgs:    []any{"org-1", "ebay"},
		},
		{
			name: "returned filter",
			query: OutcomeQuery{
				OrgID:    "org-1",
				Returned: ptr(true),
			},
			wantDataHas: []string{"was_returned = $2"},
			wantArgs:    []any{"org-1", true},
		},
		{
			name: "time window filters",
			query: OutcomeQuery{
				OrgID: "org-1",
				Since: &since,
				Until: &until,
			},
			wantDataHas: []string{
				"sold_at >= $2",
				"sold_at < $3",
			},
			wantArgs: []any{"org-1", since, until},
		},
		{
			name: "all filters with correct parameter numbering",
			query: OutcomeQuery{
				OrgID:       "org-1",
				Quality:     ptr("excellent"),
				Marketplace: ptr("etsy"),
				Returned:    ptr(false),
				Since:       &since,
			},
			wantDataHas: []string{
				"org_id = $1",
				"quality = $2",
				"marketplace = $3",
				"was_returned = $4",
				"sold_at >= $5",
				" AND ",
			},
			wantArgs: []any{"org-1", "excellent", "etsy", false, since},
		},
		{
			name: "order by recorded_at",
			query: OutcomeQuery{
				OrgID:   "org-1",
				OrderBy: "recorded_at",
			},
			wantDataHas: []string{"ORDER BY recorded_at DESC"},
		},
		{
			name: "order by sold_price",
			query: OutcomeQuery{
				OrgID:   "org-1",
				OrderBy: "sold_price",
			},
			wantDataHas: []string{"ORDER BY sold_price DESC"},
		},
		{
			name: "invalid order by falls back to default",
			query: OutcomeQuery{
				OrgID:   "org-1",
				OrderBy: "DROP TABLE outcomes; --",
			},
			wantDataHas:   []string{"ORDER BY sold_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "custom limit and offset",
			query: OutcomeQuery{
				OrgID:  "org-1",
				Limit:  25,
				Offset: 100,
			},
			wantDataHas: []string{
				"LIMIT 25",
				"OFFSET 100",
			},
		},
		{
			name: "limit exceeding max is capped",
			query: OutcomeQuery{
				OrgID: "org-1",
				Limit: 1000,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name: "negative limit defaults to 50",
			query: OutcomeQuery{
				OrgID: "org-1",
				Limit: -10,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "negative offset defaults to 0",
			query: OutcomeQuery{
				OrgID:  "org-1",
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestAnomalyQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		query       AnomalyQuery
		wantArgs    []any
		wantDataHas []string
		wantNotIn   []string
	}{
		{
			name:  "empty query spans all orgs and hides resolved",
			query: AnomalyQuery{},
			wantDataHas: []string{
				"FROM anomalies",
				"WHERE resolved = false",
				"ORDER BY detected_at DESC",
				"LIMIT 50",
			},
			wantNotIn: []string{"org_id"},
			wantArgs:  nil,
		},
		{
			name:  "org scoped",
			query: AnomalyQuery{OrgID: "org-1"},
			wantDataHas: []string{
				"org_id = $1",
				"resolved = false",
			},
			wantArgs: []any{"org-1"},
		},
		{
			name: "type and severity filters",
			query: AnomalyQuery{
				OrgID:    "org-1",
				Type:     ptr("price_deviation"),
				Severity: ptr("critical"),
			},
			wantDataHas: []string{
				"org_id = $1",
				"anomaly_type = $2",
				"severity = $3",
			},
			wantArgs: []any{"org-1", "price_deviation", "critical"},
		},
		{
			name:        "include resolved drops the resolved filter",
			query:       AnomalyQuery{OrgID: "org-1", IncludeResolved: true},
			wantDataHas: []string{"org_id = $1"},
			wantNotIn:   []string{"resolved = false"},
			wantArgs:    []any{"org-1"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       AnomalyQuery{Limit: 9999},
			wantDataHas: []string{"LIMIT 500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}
			for _, s := range tt.wantNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}
