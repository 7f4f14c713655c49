package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Score(0.8, 0.8), 0.0001)
	assert.InDelta(t, 0.5, Score(0.8, 0.4), 0.0001)
	assert.InDelta(t, 1.25, Score(0.4, 0.5), 0.0001)

	// Non-positive confidence falls back to neutral instead of dividing.
	assert.Equal(t, 1.0, Score(0, 0.9))
	assert.Equal(t, 1.0, Score(-0.1, 0.9))
}

func TestCalibrate_InsufficientData(t *testing.T) {
	t.Parallel()

	r := Calibrate(Sample{
		AvgConfidence: 0.9,
		AvgAccuracy:   0.3,
		DataPoints:    MinDataPoints - 1,
		CurrentWeight: 1.0,
	})

	assert.False(t, r.Adjusted)
	assert.Equal(t, 1.0, r.NewWeight)
	assert.Contains(t, r.Reasoning, "insufficient data")
}

func TestCalibrate_Branches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		confidence float64
		accuracy   float64
		wantWeight float64
		wantAdjust bool
		wantReason string
	}{
		{
			name:       "significantly overconfident",
			confidence: 0.9,
			accuracy:   0.45, // score 0.5
			wantWeight: 0.85,
			wantAdjust: true,
			wantReason: "significantly overconfident",
		},
		{
			name:       "mildly overconfident",
			confidence: 0.9,
			accuracy:   0.72, // score 0.8
			wantWeight: 0.95,
			wantAdjust: true,
			wantReason: "mildly overconfident",
		},
		{
			name:       "well calibrated",
			confidence: 0.8,
			accuracy:   0.8, // score 1.0
			wantWeight: 1.0,
			wantAdjust: false,
			wantReason: "well calibrated",
		},
		{
			name:       "mildly underconfident",
			confidence: 0.5,
			accuracy:   0.6, // score 1.2
			wantWeight: 1.05,
			wantAdjust: true,
			wantReason: "mildly underconfident",
		},
		{
			name:       "significantly underconfident",
			confidence: 0.5,
			accuracy:   0.75, // score 1.5
			wantWeight: 1.10,
			wantAdjust: true,
			wantReason: "significantly underconfident",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Calibrate(Sample{
				AvgConfidence: tt.confidence,
				AvgAccuracy:   tt.accuracy,
				DataPoints:    MinDataPoints,
				CurrentWeight: 1.0,
			})

			assert.InDelta(t, tt.wantWeight, r.NewWeight, 0.0001)
			assert.Equal(t, tt.wantAdjust, r.Adjusted)
			assert.Contains(t, r.Reasoning, tt.wantReason)
		})
	}
}

func TestCalibrate_BoundaryScores(t *testing.T) {
	t.Parallel()

	// 0.9 and 1.1 land in the unchanged band; 0.7 and 1.3 land in the
	// mild bands, not the aggressive ones.
	tests := []struct {
		score      float64
		wantWeight float64
	}{
		{score: 0.7, wantWeight: 0.95},
		{score: 0.9, wantWeight: 1.0},
		{score: 1.1, wantWeight: 1.0},
		{score: 1.3, wantWeight: 1.05},
	}

	for _, tt := range tests {
		r := Calibrate(Sample{
			AvgConfidence: 1.0,
			AvgAccuracy:   tt.score,
			DataPoints:    MinDataPoints,
			CurrentWeight: 1.0,
		})
		assert.InDelta(t, tt.wantWeight, r.NewWeight, 0.0001, "score %.2f", tt.score)
	}
}

func TestCalibrate_WeightBounds(t *testing.T) {
	t.Parallel()

	// Reductions stop at the floor.
	low := Calibrate(Sample{
		AvgConfidence: 0.9,
		AvgAccuracy:   0.2,
		DataPoints:    50,
		CurrentWeight: 0.11,
	})
	assert.Equal(t, MinWeight, low.NewWeight)

	// Increases stop at the ceiling.
	high := Calibrate(Sample{
		AvgConfidence: 0.4,
		AvgAccuracy:   0.9,
		DataPoints:    50,
		CurrentWeight: 1.95,
	})
	assert.Equal(t, MaxWeight, high.NewWeight)

	// A weight already at the floor is reported as unadjusted.
	pinned := Calibrate(Sample{
		AvgConfidence: 0.9,
		AvgAccuracy:   0.2,
		DataPoints:    50,
		CurrentWeight: MinWeight,
	})
	assert.False(t, pinned.Adjusted)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinWeight, Clamp(0.01))
	assert.Equal(t, MaxWeight, Clamp(5.0))
	assert.Equal(t, 1.0, Clamp(1.0))
}
