package recommend

import (
	"math"
)

// Default sizing knobs: a recommendation starts at 12% of the drink's
// volume and is clamped to a pourable 5-30 ml range.
const (
	DefaultBasePortion = 0.12
	DefaultMinAmountML = 5.0
	DefaultMaxAmountML = 30.0

	severityScale = 0.3
	severityCap   = 2.0
)

// AmountCalculator sizes recommended additions adaptively: the closer the
// drink already is to balance, the smaller the nudge.
type AmountCalculator struct {
	BasePortion float64
	MinML       float64
	MaxML       float64
}

// NewAmountCalculator constructs a calculator; non-positive knobs fall
// back to the defaults.
func NewAmountCalculator(basePortion, minML, maxML float64) *AmountCalculator {
	if basePortion <= 0 {
		basePortion = DefaultBasePortion
	}
	if minML <= 0 {
		minML = DefaultMinAmountML
	}
	if maxML <= 0 {
		maxML = DefaultMaxAmountML
	}
	return &AmountCalculator{BasePortion: basePortion, MinML: minML, MaxML: maxML}
}

// Amount returns the milliliters to add given the drink's total volume,
// its overall balance, and the imbalanced dimension's score against the
// vector mean. A drink at or above 0.98 balance gets zero: no change is
// better than a pointless one.
func (a *AmountCalculator) Amount(totalVolumeML, overallBalance, dimensionScore, mean float64) float64 {
	factor := balanceFactor(overallBalance)
	if factor == 0 {
		return 0
	}

	severity := math.Min(math.Abs(dimensionScore-mean)/severityScale, severityCap)
	amount := totalVolumeML * a.BasePortion * factor * severity

	amount = math.Max(a.MinML, math.Min(amount, a.MaxML))
	return math.Round(amount*10) / 10
}

// balanceFactor steps the portion down as the drink approaches balance.
func balanceFactor(overallBalance float64) float64 {
	switch {
	case overallBalance >= 0.98:
		return 0
	case overallBalance >= 0.95:
		return 0.25
	case overallBalance >= 0.90:
		return 0.5
	case overallBalance >= 0.80:
		return 0.75
	default:
		return 1.0
	}
}
