package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/sells-group/learning-loop/internal/notify/mocks"
	storeMocks "github.com/sells-group/learning-loop/internal/store/mocks"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// sweepOutcomes builds n outcomes; the first len(ratios) carry a price
// accuracy ratio, the rest leave it undefined.
func sweepOutcomes(n int, ratios []float64) []domain.Outcome {
	out := make([]domain.Outcome, n)
	for i := range out {
		out[i] = domain.Outcome{
			ID:     fmt.Sprintf("out-%d", i),
			OrgID:  "org-1",
			ItemID: fmt.Sprintf("item-%d", i),
			SoldAt: testNow.AddDate(0, 0, -i),
		}
		if i < len(ratios) {
			r := ratios[i]
			out[i].PriceAccuracyRatio = &r
		}
	}
	return out
}

func TestCheckPriceDeviation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		outcomes     []domain.Outcome
		wantNil      bool
		wantSeverity domain.Severity
		wantAffected int
	}{
		{
			name:     "below threshold",
			outcomes: sweepOutcomes(10, []float64{0.10, 0.10, 0.10}),
			wantNil:  true,
		},
		{
			name:     "too few outcomes",
			outcomes: sweepOutcomes(9, []float64{0.20, 0.20, 0.20}),
			wantNil:  true,
		},
		{
			name:     "no defined ratios",
			outcomes: sweepOutcomes(10, nil),
			wantNil:  true,
		},
		{
			// Ten outcomes are enough even when only three carry ratios.
			name:         "sparse ratios over threshold",
			outcomes:     sweepOutcomes(10, []float64{0.18, 0.20, 0.22}),
			wantSeverity: domain.SeverityInfo,
			wantAffected: 3,
		},
		{
			name:         "large deviation escalates",
			outcomes:     sweepOutcomes(10, []float64{0.30, 0.30, 0.30, 0.30}),
			wantSeverity: domain.SeverityWarning,
			wantAffected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := checkPriceDeviation("org-1", tt.outcomes, 30, testNow)
			if tt.wantNil {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, domain.AnomalyPriceDeviation, a.Type)
			assert.Equal(t, tt.wantSeverity, a.Severity)
			assert.Len(t, a.AffectedItemIDs, tt.wantAffected)
			assert.Equal(t, testNow, a.DetectedAt)
			assert.NotEmpty(t, a.Description)
			assert.NotEmpty(t, a.SuggestedAction)
			assert.NotEmpty(t, a.Pattern)
		})
	}
}

func TestCheckSlowSales(t *testing.T) {
	t.Parallel()

	withDays := func(days ...int) []domain.Outcome {
		out := make([]domain.Outcome, len(days))
		for i, d := range days {
			d := d
			out[i] = domain.Outcome{
				ItemID:     fmt.Sprintf("item-%d", i),
				DaysToSell: &d,
			}
		}
		return out
	}

	tests := []struct {
		name         string
		outcomes     []domain.Outcome
		wantNil      bool
		wantSeverity domain.Severity
	}{
		{
			name:     "too few samples",
			outcomes: withDays(40, 40, 40, 40),
			wantNil:  true,
		},
		{
			name:     "fast sales",
			outcomes: withDays(10, 12, 8, 15, 11),
			wantNil:  true,
		},
		{
			name:         "slow mean",
			outcomes:     withDays(35, 40, 32, 38, 36),
			wantSeverity: domain.SeverityInfo,
		},
		{
			name:         "very slow mean escalates",
			outcomes:     withDays(50, 60, 48, 55, 52),
			wantSeverity: domain.SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := checkSlowSales("org-1", tt.outcomes, 30, testNow)
			if tt.wantNil {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, domain.AnomalySlowSales, a.Type)
			assert.Equal(t, tt.wantSeverity, a.Severity)
		})
	}
}

func TestCheckReturnRate(t *testing.T) {
	t.Parallel()

	withReturns := func(total, returned int) []domain.Outcome {
		out := make([]domain.Outcome, total)
		for i := range out {
			out[i] = domain.Outcome{
				ItemID:      fmt.Sprintf("item-%d", i),
				WasReturned: i < returned,
			}
		}
		return out
	}

	tests := []struct {
		name         string
		outcomes     []domain.Outcome
		wantNil      bool
		wantSeverity domain.Severity
	}{
		{
			name:     "too few outcomes",
			outcomes: withReturns(9, 5),
			wantNil:  true,
		},
		{
			name:     "acceptable rate",
			outcomes: withReturns(20, 3),
			wantNil:  true,
		},
		{
			name:         "elevated rate",
			outcomes:     withReturns(10, 2),
			wantSeverity: domain.SeverityWarning,
		},
		{
			name:         "severe rate escalates",
			outcomes:     withReturns(10, 3),
			wantSeverity: domain.SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := checkReturnRate("org-1", tt.outcomes, 30, testNow)
			if tt.wantNil {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, domain.AnomalyCategoryMisid, a.Type)
			assert.Equal(t, tt.wantSeverity, a.Severity)
		})
	}
}

func TestSweepOrg_CreatesAnomalyAndNotifies(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)
	outcomes := sweepOutcomes(10, []float64{0.18, 0.20, 0.22})

	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-1", since).
		Return(outcomes, nil).Once()
	ms.EXPECT().GetOpenAnomaly(mock.Anything, "org-1", domain.AnomalyPriceDeviation).
		Return(nil, pgx.ErrNoRows).Once()
	ms.EXPECT().CreateAnomaly(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.Anomaly) {
			a.ID = "an-1"
		}).
		Return(nil).Once()
	mn.EXPECT().SendAnomaly(mock.Anything, mock.Anything).
		Return(nil).Once()

	created, err := eng.SweepOrg(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSweepOrg_RefreshesOpenAnomaly(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)
	outcomes := sweepOutcomes(10, []float64{0.18, 0.20, 0.22})
	open := &domain.Anomaly{ID: "an-open", OrgID: "org-1", Type: domain.AnomalyPriceDeviation}

	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-1", since).
		Return(outcomes, nil).Once()
	ms.EXPECT().GetOpenAnomaly(mock.Anything, "org-1", domain.AnomalyPriceDeviation).
		Return(open, nil).Once()
	ms.EXPECT().UpdateAnomalyEvidence(
		mock.Anything, "an-open", domain.SeverityInfo,
		mock.Anything, mock.Anything, mock.Anything, testNow,
	).Return(nil).Once()
	// Refreshing an open anomaly neither counts nor notifies.

	created, err := eng.SweepOrg(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestSweepOrg_LostCreateRaceNotCounted(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)
	outcomes := sweepOutcomes(10, []float64{0.18, 0.20, 0.22})

	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-1", since).
		Return(outcomes, nil).Once()
	ms.EXPECT().GetOpenAnomaly(mock.Anything, "org-1", domain.AnomalyPriceDeviation).
		Return(nil, pgx.ErrNoRows).Once()
	// The insert is a no-op: a concurrent sweep already holds the open slot.
	ms.EXPECT().CreateAnomaly(mock.Anything, mock.Anything).
		Return(nil).Once()

	created, err := eng.SweepOrg(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestSweepOrg_NotificationFailureDoesNotFailSweep(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)
	outcomes := sweepOutcomes(10, []float64{0.18, 0.20, 0.22})

	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-1", since).
		Return(outcomes, nil).Once()
	ms.EXPECT().GetOpenAnomaly(mock.Anything, "org-1", domain.AnomalyPriceDeviation).
		Return(nil, pgx.ErrNoRows).Once()
	ms.EXPECT().CreateAnomaly(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.Anomaly) {
			a.ID = "an-1"
		}).
		Return(nil).Once()
	mn.EXPECT().SendAnomaly(mock.Anything, mock.Anything).
		Return(errors.New("webhook unreachable")).Once()

	created, err := eng.SweepOrg(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSweepOrg_TooFewOutcomesSkipped(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)

	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-1", since).
		Return(sweepOutcomes(4, []float64{0.9}), nil).Once()

	created, err := eng.SweepOrg(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestSweepAll_OrgFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	since := testNow.AddDate(0, 0, -defaultSweepWindowDays)

	ms.EXPECT().ListActiveOrgs(mock.Anything, since).
		Return([]string{"org-bad", "org-good"}, nil).Once()
	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-bad", since).
		Return(nil, errors.New("query timeout")).Once()
	ms.EXPECT().ListRecentOutcomes(mock.Anything, "org-good", since).
		Return(sweepOutcomes(10, []float64{0.18, 0.20, 0.22}), nil).Once()
	ms.EXPECT().GetOpenAnomaly(mock.Anything, "org-good", domain.AnomalyPriceDeviation).
		Return(nil, pgx.ErrNoRows).Once()
	ms.EXPECT().CreateAnomaly(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.Anomaly) {
			a.ID = "an-1"
		}).
		Return(nil).Once()
	mn.EXPECT().SendAnomaly(mock.Anything, mock.Anything).
		Return(nil).Once()

	created, err := eng.SweepAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org-bad")
	assert.Equal(t, 1, created)
}

func TestSweepAll_ConcurrentSweepRejected(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	eng.sweepMu.Lock()
	defer eng.sweepMu.Unlock()

	created, err := eng.SweepAll(context.Background())
	require.ErrorIs(t, err, ErrSweepRunning)
	assert.Zero(t, created)
}

func TestResolveAnomaly(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	resolved := &domain.Anomaly{ID: "an-1", OrgID: "org-1", Resolved: true}

	ms.EXPECT().ResolveAnomaly(mock.Anything, "org-1", "an-1", "fixed comps", "admin-1").
		Return(resolved, nil).Once()

	a, err := eng.ResolveAnomaly(context.Background(), "org-1", "an-1", "fixed comps", "admin-1")
	require.NoError(t, err)
	assert.True(t, a.Resolved)
}

func TestResolveAnomaly_AlreadyResolved(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	ms.EXPECT().ResolveAnomaly(mock.Anything, "org-1", "an-1", "", "admin-1").
		Return(nil, pgx.ErrNoRows).Once()

	a, err := eng.ResolveAnomaly(context.Background(), "org-1", "an-1", "", "admin-1")
	require.ErrorIs(t, err, ErrAnomalyNotFound)
	assert.Nil(t, a)
}
