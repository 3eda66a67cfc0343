package balance

import (
	"math"

	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Imbalance priorities. A target the caller asked for outranks anything the
// statistics find on their own.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Imbalance is one out-of-line dimension with the direction it deviates
// in. Magnitude is the absolute distance from the vector mean.
type Imbalance struct {
	Dimension    flavor.Dimension     `json:"dimension"`
	Kind         flavor.ImbalanceKind `json:"kind"`
	Priority     string               `json:"priority"`
	CurrentValue float64              `json:"current_value"`
	Magnitude    float64              `json:"magnitude"`
}

// Default detection knobs. Sensitivity scales the standard-deviation band;
// the floor keeps an already-present dimension from being flagged as too
// low just because its siblings are stronger.
const (
	DefaultSensitivity   = 1.0
	DefaultLowScoreFloor = 0.3
)

// Detector flags taste dimensions that sit outside the mean by more than
// Sensitivity standard deviations.
type Detector struct {
	Sensitivity   float64
	LowScoreFloor float64
}

// NewDetector constructs a detector; non-positive knobs fall back to the
// defaults.
func NewDetector(sensitivity, lowScoreFloor float64) *Detector {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	if lowScoreFloor <= 0 {
		lowScoreFloor = DefaultLowScoreFloor
	}
	return &Detector{Sensitivity: sensitivity, LowScoreFloor: lowScoreFloor}
}

// Detect returns the drink's imbalances, most urgent first. A target goal
// (e.g. "sweeter") is prepended at high priority whether or not the
// statistics agree; the statistical findings follow at medium priority, so
// a target dimension that is also statistically off can appear twice.
func (d *Detector) Detect(v flavor.TasteVector, target flavor.Target) []Imbalance {
	var out []Imbalance

	mean := v.Mean()
	std := v.StdDev()
	band := std * d.Sensitivity

	if dim, kind, ok := target.Goal(); ok {
		out = append(out, Imbalance{
			Dimension:    dim,
			Kind:         kind,
			Priority:     PriorityHigh,
			CurrentValue: v[dim],
			Magnitude:    math.Abs(v[dim] - mean),
		})
	}

	for _, dim := range flavor.Dimensions() {
		score := v[dim]
		switch {
		case score > mean+band:
			out = append(out, Imbalance{
				Dimension:    dim,
				Kind:         flavor.TooHigh,
				Priority:     PriorityMedium,
				CurrentValue: score,
				Magnitude:    score - mean,
			})
		case score < mean-band && score < d.LowScoreFloor:
			out = append(out, Imbalance{
				Dimension:    dim,
				Kind:         flavor.TooLow,
				Priority:     PriorityMedium,
				CurrentValue: score,
				Magnitude:    mean - score,
			})
		}
	}
	return out
}
