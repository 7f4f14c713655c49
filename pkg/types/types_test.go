package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestPriceAccuracyRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    *float64
		soldPrice float64
		want      *float64
	}{
		{name: "exact match", target: fp(100), soldPrice: 100, want: fp(0)},
		{name: "10 percent over", target: fp(110), soldPrice: 100, want: fp(0.10)},
		{name: "10 percent under", target: fp(90), soldPrice: 100, want: fp(0.10)},
		{name: "nil target", target: nil, soldPrice: 100, want: nil},
		{name: "zero sold price", target: fp(100), soldPrice: 0, want: nil},
		{name: "negative sold price", target: fp(100), soldPrice: -5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PriceAccuracyRatio(tt.target, tt.soldPrice)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestPriceWithinBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		floor     *float64
		ceiling   *float64
		soldPrice float64
		want      *bool
	}{
		{name: "inside bands", floor: fp(80), ceiling: fp(120), soldPrice: 100, want: boolPtr(true)},
		{name: "at floor", floor: fp(80), ceiling: fp(120), soldPrice: 80, want: boolPtr(true)},
		{name: "at ceiling", floor: fp(80), ceiling: fp(120), soldPrice: 120, want: boolPtr(true)},
		{name: "below floor", floor: fp(80), ceiling: fp(120), soldPrice: 79.99, want: boolPtr(false)},
		{name: "above ceiling", floor: fp(80), ceiling: fp(120), soldPrice: 120.01, want: boolPtr(false)},
		{name: "missing floor", floor: nil, ceiling: fp(120), soldPrice: 100, want: nil},
		{name: "missing ceiling", floor: fp(80), ceiling: nil, soldPrice: 100, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PriceWithinBands(tt.floor, tt.ceiling, tt.soldPrice)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestClassifyQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ratio       *float64
		withinBands *bool
		want        OutcomeQuality
	}{
		{name: "nil ratio is fair", ratio: nil, withinBands: nil, want: QualityFair},
		{name: "zero deviation", ratio: fp(0), want: QualityExcellent},
		{name: "at excellent boundary", ratio: fp(0.05), want: QualityExcellent},
		{name: "just past excellent", ratio: fp(0.0501), want: QualityGood},
		{name: "at good boundary", ratio: fp(0.15), want: QualityGood},
		{name: "at fair boundary", ratio: fp(0.30), want: QualityFair},
		{name: "big miss outside bands", ratio: fp(0.45), withinBands: boolPtr(false), want: QualityPoor},
		{name: "big miss but inside bands", ratio: fp(0.45), withinBands: boolPtr(true), want: QualityFair},
		{name: "big miss with unknown bands", ratio: fp(0.45), withinBands: nil, want: QualityPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyQuality(tt.ratio, tt.withinBands))
		})
	}
}

func TestOutcome_ComputeDerived_ReturnedIsPoor(t *testing.T) {
	t.Parallel()

	o := &Outcome{
		PredictedTarget: fp(100),
		SoldPrice:       100,
		WasReturned:     true,
	}
	o.ComputeDerived()

	require.NotNil(t, o.PriceAccuracyRatio)
	assert.InDelta(t, 0, *o.PriceAccuracyRatio, 0.0001)
	assert.Equal(t, QualityPoor, o.Quality)
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		listed time.Time
		sold   time.Time
		want   int
	}{
		{name: "same instant", listed: base, sold: base, want: 0},
		{name: "under a day", listed: base, sold: base.Add(23 * time.Hour), want: 0},
		{name: "exactly a day", listed: base, sold: base.Add(24 * time.Hour), want: 1},
		{name: "a week and change", listed: base, sold: base.Add(7*24*time.Hour + 6*time.Hour), want: 7},
		{name: "sold before listed floors down", listed: base, sold: base.Add(-1 * time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaysBetween(tt.listed, tt.sold))
		})
	}
}

func TestMonthStart(t *testing.T) {
	t.Parallel()

	// A local-zone timestamp near a month boundary buckets by its UTC month.
	loc := time.FixedZone("UTC+10", 10*3600)
	local := time.Date(2026, 4, 1, 5, 0, 0, 0, loc) // 2026-03-31T19:00Z

	got := MonthStart(local)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), MonthEnd(local))
}

func TestEffectivenessRecord_Averages(t *testing.T) {
	t.Parallel()

	empty := &EffectivenessRecord{}
	assert.Zero(t, empty.AvgConfidence())
	assert.Zero(t, empty.AvgAccuracy())
	assert.Zero(t, empty.AvgPriceDeviation())
	assert.Zero(t, empty.IdentificationRate())

	r := &EffectivenessRecord{
		ConfidenceSum:              4.0,
		ConfidenceCount:            5,
		ActualAccuracySum:          4.5,
		PriceDeviationSum:          0.6,
		PriceAccuracyCount:         4,
		IdentificationCorrectCount: 3,
		IdentificationTotalCount:   4,
	}
	assert.InDelta(t, 0.8, r.AvgConfidence(), 0.0001)
	assert.InDelta(t, 0.9, r.AvgAccuracy(), 0.0001)
	assert.InDelta(t, 0.15, r.AvgPriceDeviation(), 0.0001)
	assert.InDelta(t, 0.75, r.IdentificationRate(), 0.0001)
}
