package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/plausibility"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

func testRecommendService(t *testing.T, source fixtureSource, opts ...ServiceOption) *Service {
	t.Helper()
	analyzer := testAnalyzer(t, source)
	profiler := testProfiler(t)
	sim := NewSimulator(analyzer, nil)
	selector := NewSelector(sim, 0, nil)
	picker := NewPlausibilityReranker(selector, plausibility.NewTableFromScores(map[string]float64{
		"simple syrup": 1.0,
		"honey":        0.9,
		"lemon juice":  0.95,
		"lime juice":   0.9,
	}))
	return NewService(
		source,
		analyzer,
		NewGenerator(Tables{}, profiler, 0),
		NewAmountCalculator(0, 0, 0),
		picker,
		nil,
		opts...,
	)
}

func TestRecommend_NotFound(t *testing.T) {
	s := testRecommendService(t, fixtureSource{})

	_, err := s.Recommend(context.Background(), "Vesper", flavor.TargetNone, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCocktailNotFound))
}

func TestRecommend_ImbalancedDrinkGetsSuggestions(t *testing.T) {
	source := fixtureSource{"Bitter Trouble": negroniVariant()}
	s := testRecommendService(t, source)

	result, err := s.Recommend(context.Background(), "Bitter Trouble", flavor.TargetNone, false)
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.True(t, result.ShouldRecommend)
	assert.Equal(t, msgGood, result.Message)
	require.NotEmpty(t, result.Recommendations)
	for _, rec := range result.Recommendations {
		assert.Greater(t, rec.AmountML, 0.0, "no zero-ml recommendations")
		assert.NotEmpty(t, rec.Reason)
		require.NotEmpty(t, rec.PredictedTasteProfile, "every suggestion carries its taste vector")
	}
	assert.Nil(t, result.Best)
}

func TestRecommend_BestModeVerifiesBySimulation(t *testing.T) {
	source := fixtureSource{"Bitter Trouble": negroniVariant()}
	s := testRecommendService(t, source)

	result, err := s.Recommend(context.Background(), "Bitter Trouble", flavor.TargetNone, true)
	require.NoError(t, err)

	require.NotNil(t, result.Best)
	require.NotEmpty(t, result.Evaluated)
	for _, e := range result.Evaluated {
		assert.GreaterOrEqual(t, result.Best.Combined, e.Combined)
	}
}

func TestRecommend_TargetDrivesCandidates(t *testing.T) {
	source := fixtureSource{"Bitter Trouble": negroniVariant()}
	s := testRecommendService(t, source)

	result, err := s.Recommend(context.Background(), "Bitter Trouble", flavor.TargetMoreSour, false)
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	// the target imbalance is first, so the leading suggestions raise sour
	assert.Equal(t, flavor.Sour, result.Recommendations[0].Dimension)
	assert.Equal(t, flavor.TooLow, result.Recommendations[0].Kind)
}

func TestRecommend_ExcellentDrinkGetsNoRecommendations(t *testing.T) {
	// vodka only: all-zero taste vector, variance 0, balance 1.0
	source := fixtureSource{"Vodka Neat": {
		Name:        "Vodka Neat",
		Ingredients: []cocktail.Ingredient{{Name: "vodka", VolumeML: 60}},
	}}
	s := testRecommendService(t, source)

	result, err := s.Recommend(context.Background(), "Vodka Neat", flavor.TargetNone, true)
	require.NoError(t, err)

	assert.False(t, result.ShouldRecommend)
	assert.Equal(t, msgExcellent, result.Message)
	assert.Empty(t, result.Recommendations)
	assert.Nil(t, result.Best)
}

func TestAssess_Thresholds(t *testing.T) {
	s := testRecommendService(t, fixtureSource{})

	tests := []struct {
		name      string
		balance   float64
		maxDev    float64
		wantRec   bool
		wantMsg   string
	}{
		{"excellent", 0.99, 0.5, false, msgExcellent},
		{"well_balanced", 0.96, 0.1, false, msgWellBalanced},
		{"well_balanced_but_skewed", 0.96, 0.3, true, msgGood},
		{"good", 0.90, 0.3, true, msgGood},
		{"imbalanced", 0.5, 0.4, true, msgImbalanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, msg := s.assess(tt.balance, tt.maxDev)
			assert.Equal(t, tt.wantRec, rec)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRecommend_ExcellenceThresholdOverride(t *testing.T) {
	s := testRecommendService(t, fixtureSource{}, WithExcellenceThreshold(0.90))
	rec, msg := s.assess(0.92, 0.5)
	assert.False(t, rec)
	assert.Equal(t, msgExcellent, msg)
}
