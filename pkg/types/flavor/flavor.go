// Package flavor defines the shared value types of the flavor-balance
// pipeline: the five taste dimensions, the taste vector with its summary
// statistics, and the imbalance/target vocabulary used by the detector
// and the recommendation engine.
package flavor

import (
	"fmt"
	"math"
)

// Dimension is one of the five fixed taste axes.
type Dimension string

const (
	Sweet    Dimension = "sweet"
	Sour     Dimension = "sour"
	Bitter   Dimension = "bitter"
	Savory   Dimension = "savory"
	Aromatic Dimension = "aromatic"
)

// Dimensions returns all taste dimensions in canonical order. The order is
// stable so that iteration over a vector is deterministic.
func Dimensions() []Dimension {
	return []Dimension{Sweet, Sour, Bitter, Savory, Aromatic}
}

// IsValid reports whether d is one of the five known dimensions.
func (d Dimension) IsValid() bool {
	switch d {
	case Sweet, Sour, Bitter, Savory, Aromatic:
		return true
	}
	return false
}

func (d Dimension) String() string { return string(d) }

// ParseDimension converts a string to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown taste dimension %q", s)
	}
	return d, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// TasteVector
// ─────────────────────────────────────────────────────────────────────────────

// TasteVector holds one score per taste dimension. Scores are normalized to
// [0,1] by the profiler; an all-zero vector is the canonical "no molecular
// data" profile.
type TasteVector map[Dimension]float64

// NewTasteVector returns a zero vector with all five dimensions present.
func NewTasteVector() TasteVector {
	v := make(TasteVector, len(Dimensions()))
	for _, d := range Dimensions() {
		v[d] = 0
	}
	return v
}

// Clone returns an independent copy of the vector.
func (v TasteVector) Clone() TasteVector {
	out := make(TasteVector, len(v))
	for d, s := range v {
		out[d] = s
	}
	return out
}

// Values returns the scores in canonical dimension order.
func (v TasteVector) Values() []float64 {
	out := make([]float64, 0, len(Dimensions()))
	for _, d := range Dimensions() {
		out = append(out, v[d])
	}
	return out
}

// Mean returns the arithmetic mean over the five dimensions.
func (v TasteVector) Mean() float64 {
	var sum float64
	for _, d := range Dimensions() {
		sum += v[d]
	}
	return sum / float64(len(Dimensions()))
}

// Variance returns the population variance over the five dimensions.
func (v TasteVector) Variance() float64 {
	mean := v.Mean()
	var sum float64
	for _, d := range Dimensions() {
		diff := v[d] - mean
		sum += diff * diff
	}
	return sum / float64(len(Dimensions()))
}

// StdDev returns the population standard deviation over the five dimensions.
func (v TasteVector) StdDev() float64 {
	return math.Sqrt(v.Variance())
}

// MaxDeviation returns the largest absolute distance of any dimension from
// the vector mean.
func (v TasteVector) MaxDeviation() float64 {
	mean := v.Mean()
	var max float64
	for _, d := range Dimensions() {
		if dev := math.Abs(v[d] - mean); dev > max {
			max = dev
		}
	}
	return max
}

// ─────────────────────────────────────────────────────────────────────────────
// Imbalances and targets
// ─────────────────────────────────────────────────────────────────────────────

// ImbalanceKind classifies a flagged dimension.
type ImbalanceKind string

const (
	TooHigh ImbalanceKind = "too_high"
	TooLow  ImbalanceKind = "too_low"
)

// Target is a caller-supplied balance goal. A target pins one dimension as
// flagged regardless of what the statistical detector would say.
type Target string

const (
	TargetNone         Target = ""
	TargetSweeter      Target = "sweeter"
	TargetMoreSour     Target = "more_sour"
	TargetLessBitter   Target = "less_bitter"
	TargetMoreAromatic Target = "more_aromatic"
	TargetBalanced     Target = "balanced"
)

// Goal resolves a target to the dimension it pins and the imbalance kind the
// detector should report for it. ok is false for TargetNone and
// TargetBalanced, which leave detection entirely to the statistics.
func (t Target) Goal() (dim Dimension, kind ImbalanceKind, ok bool) {
	switch t {
	case TargetSweeter:
		return Sweet, TooLow, true
	case TargetMoreSour:
		return Sour, TooLow, true
	case TargetLessBitter:
		return Bitter, TooHigh, true
	case TargetMoreAromatic:
		return Aromatic, TooLow, true
	}
	return "", "", false
}

// ParseTarget validates a target string.
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetNone, TargetSweeter, TargetMoreSour, TargetLessBitter, TargetMoreAromatic, TargetBalanced:
		return t, nil
	}
	return "", fmt.Errorf("unknown balance target %q", s)
}
