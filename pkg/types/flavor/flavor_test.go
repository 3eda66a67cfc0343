package flavor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEpsilon = 1e-9

func TestDimension_IsValid(t *testing.T) {
	assert.True(t, Sweet.IsValid())
	assert.True(t, Sour.IsValid())
	assert.True(t, Bitter.IsValid())
	assert.True(t, Savory.IsValid())
	assert.True(t, Aromatic.IsValid())
	assert.False(t, Dimension("salty").IsValid())
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("aromatic")
	assert.NoError(t, err)
	assert.Equal(t, Aromatic, d)

	_, err = ParseDimension("umami")
	assert.Error(t, err)
}

func TestNewTasteVector_Zero(t *testing.T) {
	v := NewTasteVector()
	assert.Len(t, v, 5)
	for _, d := range Dimensions() {
		assert.Equal(t, 0.0, v[d])
	}
	assert.Equal(t, 0.0, v.Mean())
	assert.Equal(t, 0.0, v.Variance())
}

func TestTasteVector_Statistics(t *testing.T) {
	v := TasteVector{Sweet: 0.45, Sour: 0.45, Bitter: 0, Savory: 0, Aromatic: 0}

	assert.InDelta(t, 0.18, v.Mean(), testEpsilon)
	// population variance: (2*(0.27)^2 + 3*(0.18)^2) / 5
	assert.InDelta(t, 0.0486, v.Variance(), testEpsilon)
	assert.InDelta(t, 0.27, v.MaxDeviation(), testEpsilon)
}

func TestTasteVector_Clone(t *testing.T) {
	v := TasteVector{Sweet: 0.5, Sour: 0.2, Bitter: 0.1, Savory: 0, Aromatic: 0.3}
	c := v.Clone()
	c[Sweet] = 0.9
	assert.Equal(t, 0.5, v[Sweet])
	assert.Equal(t, 0.9, c[Sweet])
}

func TestTasteVector_Values_Order(t *testing.T) {
	v := TasteVector{Sweet: 1, Sour: 2, Bitter: 3, Savory: 4, Aromatic: 5}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.Values())
}

func TestTarget_Goal(t *testing.T) {
	tests := []struct {
		target Target
		dim    Dimension
		kind   ImbalanceKind
		ok     bool
	}{
		{TargetSweeter, Sweet, TooLow, true},
		{TargetMoreSour, Sour, TooLow, true},
		{TargetLessBitter, Bitter, TooHigh, true},
		{TargetMoreAromatic, Aromatic, TooLow, true},
		{TargetBalanced, "", "", false},
		{TargetNone, "", "", false},
	}
	for _, tt := range tests {
		dim, kind, ok := tt.target.Goal()
		assert.Equal(t, tt.ok, ok, string(tt.target))
		if ok {
			assert.Equal(t, tt.dim, dim)
			assert.Equal(t, tt.kind, kind)
		}
	}
}

func TestParseTarget(t *testing.T) {
	tg, err := ParseTarget("less_bitter")
	assert.NoError(t, err)
	assert.Equal(t, TargetLessBitter, tg)

	_, err = ParseTarget("saltier")
	assert.Error(t, err)
}
