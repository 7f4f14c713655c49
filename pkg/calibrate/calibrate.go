// Package calibrate implements the confidence-weight recalibration rules.
// It is pure math over aggregated tool statistics, decoupled from storage.
package calibrate

import (
	"fmt"
	"math"
)

// Calibration constants.
const (
	// MinDataPoints is the minimum number of confidence samples a tool
	// needs in the lookback window before its weight may be adjusted.
	MinDataPoints = 10

	// MinWeight and MaxWeight bound a tool's confidence weight. A single
	// run can move a weight at most 15%, so it never jumps across the
	// range in one pass.
	MinWeight = 0.1
	MaxWeight = 2.0
)

// Sample is the aggregated input for one tool over the lookback window.
type Sample struct {
	AvgConfidence float64
	AvgAccuracy   float64
	DataPoints    int
	CurrentWeight float64
}

// Result is the calibration decision for one tool.
type Result struct {
	Score     float64
	NewWeight float64
	Reasoning string
	Adjusted  bool
}

// Score returns avgAccuracy / avgConfidence. A non-positive confidence
// denominator yields a neutral 1.0 rather than a division blow-up.
func Score(avgConfidence, avgAccuracy float64) float64 {
	if avgConfidence <= 0 {
		return 1.0
	}
	return avgAccuracy / avgConfidence
}

// Clamp bounds a weight to [MinWeight, MaxWeight].
func Clamp(w float64) float64 {
	return math.Max(MinWeight, math.Min(MaxWeight, w))
}

// Calibrate applies the adjustment rules to one tool's sample. Tools with
// fewer than MinDataPoints samples are left untouched. A score below 1
// means the tool claims more confidence than its realized accuracy earns.
func Calibrate(s Sample) Result {
	if s.DataPoints < MinDataPoints {
		return Result{
			Score:     Score(s.AvgConfidence, s.AvgAccuracy),
			NewWeight: s.CurrentWeight,
			Reasoning: fmt.Sprintf("insufficient data (%d of %d required samples), weight unchanged", s.DataPoints, MinDataPoints),
			Adjusted:  false,
		}
	}

	score := Score(s.AvgConfidence, s.AvgAccuracy)

	var (
		factor    float64
		reasoning string
	)
	switch {
	case score < 0.7:
		factor = 0.85
		reasoning = fmt.Sprintf("tool is significantly overconfident (score %.2f), reducing weight 15%%", score)
	case score > 1.3:
		factor = 1.10
		reasoning = fmt.Sprintf("tool is significantly underconfident (score %.2f), increasing weight 10%%", score)
	case score >= 0.9 && score <= 1.1:
		factor = 1.0
		reasoning = fmt.Sprintf("tool is well calibrated (score %.2f), weight unchanged", score)
	case score < 0.9:
		factor = 0.95
		reasoning = fmt.Sprintf("tool is mildly overconfident (score %.2f), reducing weight 5%%", score)
	default:
		factor = 1.05
		reasoning = fmt.Sprintf("tool is mildly underconfident (score %.2f), increasing weight 5%%", score)
	}

	newWeight := Clamp(s.CurrentWeight * factor)

	return Result{
		Score:     score,
		NewWeight: newWeight,
		Reasoning: reasoning,
		Adjusted:  newWeight != s.CurrentWeight,
	}
}
