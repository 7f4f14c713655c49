package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/sells-group/learning-loop/internal/notify/mocks"
	storeMocks "github.com/sells-group/learning-loop/internal/store/mocks"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// effRecord builds one effectiveness bucket with the calibration-relevant
// fields populated.
func effRecord(
	tool domain.ToolType,
	orgID string,
	periodStart time.Time,
	confSum float64,
	confCount int,
	accSum float64,
	weight float64,
) domain.EffectivenessRecord {
	return domain.EffectivenessRecord{
		OrgID:             orgID,
		ToolType:          tool,
		PeriodStart:       periodStart,
		PeriodEnd:         periodStart.AddDate(0, 1, 0),
		ConfidenceSum:     confSum,
		ConfidenceCount:   confCount,
		ActualAccuracySum: accSum,
		CurrentWeight:     weight,
	}
}

func TestRecalibrate_OverconfidentToolWeightReduced(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	cutoff := testNow.AddDate(0, 0, -defaultLookbackDays)
	currentMonth := domain.MonthStart(testNow)

	// 12 samples, avg confidence 0.9, avg accuracy 0.5: score ~0.56.
	records := []domain.EffectivenessRecord{
		effRecord(domain.ToolMarketSearch, "org-1", currentMonth, 10.8, 12, 6.0, 1.0),
	}

	ms.EXPECT().ListEffectivenessSince(mock.Anything, cutoff).
		Return(records, nil).Once()

	var appliedScore float64
	ms.EXPECT().ApplyCalibration(
		mock.Anything, domain.ToolMarketSearch, cutoff, 0.85, mock.Anything, testNow,
	).
		Run(func(_ context.Context, _ domain.ToolType, _ time.Time, _, score float64, _ time.Time) {
			appliedScore = score
		}).
		Return(nil).Once()
	ms.EXPECT().SetToolWeight(mock.Anything, domain.ToolMarketSearch, currentMonth, 0.85).
		Return(nil).Once()

	var persisted *domain.CalibrationRun
	ms.EXPECT().InsertCalibrationRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run *domain.CalibrationRun) {
			persisted = run
		}).
		Return(nil).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerManual, "admin-1")
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, domain.ToolMarketSearch, r.ToolType)
	assert.InDelta(t, 0.5/0.9, r.CalibrationScore, 1e-9)
	assert.InDelta(t, 0.5/0.9, appliedScore, 1e-9)
	assert.InDelta(t, 0.9, r.AvgConfidence, 1e-9)
	assert.InDelta(t, 0.5, r.AvgAccuracy, 1e-9)
	assert.Equal(t, 12, r.DataPoints)
	assert.Equal(t, 1.0, r.PreviousWeight)
	assert.Equal(t, 0.85, r.NewWeight)
	assert.Contains(t, r.Reasoning, "significantly overconfident")

	require.NotNil(t, persisted)
	assert.Equal(t, domain.TriggerManual, persisted.Trigger)
	assert.Equal(t, "admin-1", persisted.ActorID)
	assert.Equal(t, defaultLookbackDays, persisted.LookbackDays)
	assert.Equal(t, testNow, persisted.CalibratedAt)
	assert.Len(t, persisted.Results, 1)

	hist := eng.History()
	require.Len(t, hist, 1)
	assert.Equal(t, domain.TriggerManual, hist[0].Trigger)
}

func TestRecalibrate_PoolsScopesAndTakesLatestWeight(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	cutoff := testNow.AddDate(0, 0, -defaultLookbackDays)
	currentMonth := domain.MonthStart(testNow)
	lastMonth := currentMonth.AddDate(0, -1, 0)

	// Two scopes pool into one sample; the newest period supplies the
	// live weight even though the older record carries a different one.
	records := []domain.EffectivenessRecord{
		effRecord(domain.ToolPriceComps, "org-1", lastMonth, 5.4, 6, 3.0, 1.2),
		effRecord(domain.ToolPriceComps, domain.ScopeGlobal, currentMonth, 5.4, 6, 3.0, 1.0),
	}

	ms.EXPECT().ListEffectivenessSince(mock.Anything, cutoff).
		Return(records, nil).Once()
	ms.EXPECT().ApplyCalibration(
		mock.Anything, domain.ToolPriceComps, cutoff, 0.85, mock.Anything, testNow,
	).Return(nil).Once()
	ms.EXPECT().SetToolWeight(mock.Anything, domain.ToolPriceComps, currentMonth, 0.85).
		Return(nil).Once()
	ms.EXPECT().InsertCalibrationRun(mock.Anything, mock.Anything).
		Return(nil).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 12, results[0].DataPoints)
	assert.Equal(t, 1.0, results[0].PreviousWeight)
}

func TestRecalibrate_InsufficientDataSkipsTool(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	cutoff := testNow.AddDate(0, 0, -defaultLookbackDays)
	currentMonth := domain.MonthStart(testNow)

	records := []domain.EffectivenessRecord{
		effRecord(domain.ToolImageAnalysis, "org-1", currentMonth, 8.1, 9, 4.5, 1.0),
	}

	ms.EXPECT().ListEffectivenessSince(mock.Anything, cutoff).
		Return(records, nil).Once()
	// The run record is still written, with no per-tool results.
	ms.EXPECT().InsertCalibrationRun(mock.Anything, mock.Anything).
		Return(nil).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecalibrate_NoCurrentMonthLeavesLiveWeight(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	cutoff := testNow.AddDate(0, 0, -defaultLookbackDays)
	lastMonth := domain.MonthStart(testNow).AddDate(0, -1, 0)

	records := []domain.EffectivenessRecord{
		effRecord(domain.ToolWebSearch, "org-1", lastMonth, 10.8, 12, 6.0, 1.0),
	}

	ms.EXPECT().ListEffectivenessSince(mock.Anything, cutoff).
		Return(records, nil).Once()
	ms.EXPECT().ApplyCalibration(
		mock.Anything, domain.ToolWebSearch, cutoff, 0.85, mock.Anything, testNow,
	).Return(nil).Once()
	// No SetToolWeight: there is no current-month bucket to move.
	ms.EXPECT().InsertCalibrationRun(mock.Anything, mock.Anything).
		Return(nil).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestRecalibrate_ApplyFailureReturnsPartialResults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	cutoff := testNow.AddDate(0, 0, -defaultLookbackDays)
	currentMonth := domain.MonthStart(testNow)

	// Tools are processed in lexicographic order: image_analysis commits,
	// then market_search fails.
	records := []domain.EffectivenessRecord{
		effRecord(domain.ToolMarketSearch, "org-1", currentMonth, 10.8, 12, 6.0, 1.0),
		effRecord(domain.ToolImageAnalysis, "org-1", currentMonth, 10.8, 12, 6.0, 1.0),
	}

	ms.EXPECT().ListEffectivenessSince(mock.Anything, cutoff).
		Return(records, nil).Once()
	ms.EXPECT().ApplyCalibration(
		mock.Anything, domain.ToolImageAnalysis, cutoff, 0.85, mock.Anything, testNow,
	).Return(nil).Once()
	ms.EXPECT().SetToolWeight(mock.Anything, domain.ToolImageAnalysis, currentMonth, 0.85).
		Return(nil).Once()
	ms.EXPECT().ApplyCalibration(
		mock.Anything, domain.ToolMarketSearch, cutoff, 0.85, mock.Anything, testNow,
	).Return(errors.New("connection reset")).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_search")

	// The committed tool's result survives; its weight stands.
	require.Len(t, results, 1)
	assert.Equal(t, domain.ToolImageAnalysis, results[0].ToolType)
}

func TestRecalibrate_ConcurrentRunRejected(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	eng.calibMu.Lock()
	defer eng.calibMu.Unlock()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerManual, "")
	require.ErrorIs(t, err, ErrCalibrationRunning)
	assert.Nil(t, results)
}

func TestRecalibrate_FetchError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	ms.EXPECT().ListEffectivenessSince(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	results, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.Error(t, err)
	assert.Nil(t, results)
}

func TestRecalibrate_PersistFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	ms.EXPECT().ListEffectivenessSince(mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	ms.EXPECT().InsertCalibrationRun(mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()

	_, err := eng.Recalibrate(context.Background(), domain.TriggerScheduled, "")
	require.NoError(t, err)

	// The run still lands in the in-process history.
	assert.Len(t, eng.History(), 1)
}

func TestHistory_CappedNewestFirst(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	for i := 0; i < historyCap+5; i++ {
		eng.appendHistory(domain.CalibrationRun{ID: fmt.Sprintf("run-%d", i)})
	}

	hist := eng.History()
	require.Len(t, hist, historyCap)
	assert.Equal(t, fmt.Sprintf("run-%d", historyCap+4), hist[0].ID)
}

func TestHistory_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	eng.appendHistory(domain.CalibrationRun{ID: "run-1"})

	hist := eng.History()
	hist[0].ID = "mutated"

	assert.Equal(t, "run-1", eng.History()[0].ID)
}
