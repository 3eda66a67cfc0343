package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount_BalanceFactorSteps(t *testing.T) {
	a := NewAmountCalculator(0, 0, 0)

	tests := []struct {
		name    string
		balance float64
		want    float64
	}{
		// 100 ml drink, severity 1.0 (|score-mean| = 0.3)
		{"excellent_gets_zero", 0.99, 0},
		{"very_good_quarter", 0.96, 5.0},  // 12 * 0.25 = 3 -> clamps up to 5
		{"good_half", 0.92, 6.0},          // 12 * 0.5
		{"fair_three_quarters", 0.85, 9.0}, // 12 * 0.75
		{"poor_full", 0.5, 12.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Amount(100, tt.balance, 0.5, 0.2)
			assert.InDelta(t, tt.want, got, testEpsilon)
		})
	}
}

func TestAmount_SeverityScalesAndCaps(t *testing.T) {
	a := NewAmountCalculator(0, 0, 0)

	// severity = 0.15/0.3 = 0.5 -> 100*0.12*1.0*0.5 = 6.0
	assert.InDelta(t, 6.0, a.Amount(100, 0.5, 0.35, 0.2), testEpsilon)
	// severity capped at 2.0 -> 100*0.12*1.0*2.0 = 24.0
	assert.InDelta(t, 24.0, a.Amount(100, 0.5, 1.0, 0.2), testEpsilon)
}

func TestAmount_Clamp(t *testing.T) {
	a := NewAmountCalculator(0, 0, 0)

	// tiny drink: 20*0.12*1.0*1.0 = 2.4 -> floor 5
	assert.Equal(t, 5.0, a.Amount(20, 0.5, 0.5, 0.2))
	// huge drink: 500*0.12*1.0*2.0 = 120 -> ceiling 30
	assert.Equal(t, 30.0, a.Amount(500, 0.5, 1.0, 0.2))
}

func TestAmount_RoundsToOneDecimal(t *testing.T) {
	a := NewAmountCalculator(0, 0, 0)
	// 110*0.12*1.0*(0.2/0.3) = 8.8
	got := a.Amount(110, 0.5, 0.4, 0.2)
	assert.Equal(t, 8.8, got)
}

func TestNewAmountCalculator_Defaults(t *testing.T) {
	a := NewAmountCalculator(0, 0, 0)
	assert.Equal(t, DefaultBasePortion, a.BasePortion)
	assert.Equal(t, DefaultMinAmountML, a.MinML)
	assert.Equal(t, DefaultMaxAmountML, a.MaxML)

	custom := NewAmountCalculator(0.2, 2, 50)
	assert.Equal(t, 0.2, custom.BasePortion)
	assert.Equal(t, 2.0, custom.MinML)
	assert.Equal(t, 50.0, custom.MaxML)
}
