package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

type fixtureSource map[string]*cocktail.Cocktail

func (f fixtureSource) Find(name string) (*cocktail.Cocktail, bool) {
	c, ok := f[name]
	return c, ok
}

func (f fixtureSource) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	return names
}

type fakeCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func testService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	mols := []*molecule.Molecule{
		{ID: 1, Sources: []string{"simple syrup"}, Sweet: true, FlavorKeywords: []string{"sweet", "sugar"}, MolecularWeight: 342},
		{ID: 2, Sources: []string{"lemon juice"}, FlavorKeywords: []string{"citrus", "tart"}, MolecularWeight: 192},
		{ID: 3, Sources: []string{"gin"}, FlavorKeywords: []string{"herbal", "juniper"}, FunctionalGroups: []string{"terpene"}, MolecularWeight: 136},
	}
	idx := molecule.NewIndex(mols, nil, molecule.WithKeywordRules(nil))
	source := fixtureSource{
		"Gimlet": {
			Name:     "Gimlet",
			Category: "Sour",
			Ingredients: []cocktail.Ingredient{
				{Name: "gin", VolumeML: 60},
				{Name: "lemon juice", VolumeML: 20},
				{Name: "simple syrup", VolumeML: 15},
			},
		},
	}
	return NewService(
		source,
		ingredient.NewProfiler(idx, nil),
		cocktail.NewAggregator(0, 0),
		balance.NewScorer(),
		balance.NewDetector(0, 0),
		nil,
		opts...,
	)
}

func TestAnalyze_NotFound(t *testing.T) {
	s := testService(t)

	_, err := s.Analyze(context.Background(), "Vesper", flavor.TargetNone)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCocktailNotFound))
	assert.True(t, errors.IsNotFound(err))
}

func TestAnalyze_Report(t *testing.T) {
	s := testService(t)

	report, err := s.Analyze(context.Background(), "Gimlet", flavor.TargetNone)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "Gimlet", report.Cocktail)
	assert.Equal(t, "Sour", report.Category)
	assert.Equal(t, 95.0, report.TotalVolumeML)
	require.Len(t, report.Ingredients, 3)
	assert.Equal(t, "gin", report.Ingredients[0].Name)
	assert.False(t, report.Ingredients[0].Profile.IsEmpty())

	assert.Greater(t, report.OverallBalance, 0.0)
	assert.LessOrEqual(t, report.OverallBalance, 1.0)
	assert.Greater(t, report.Complexity, 0.0)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAnalyze_UnknownIngredientDegradesToZero(t *testing.T) {
	s := testService(t)
	c := &cocktail.Cocktail{
		Name: "Mystery",
		Ingredients: []cocktail.Ingredient{
			{Name: "gin", VolumeML: 50},
			{Name: "unobtainium essence", VolumeML: 10},
		},
	}

	report := s.AnalyzeCocktail(c, flavor.TargetNone)
	require.Len(t, report.Ingredients, 2)
	assert.True(t, report.Ingredients[1].Profile.IsEmpty())
	assert.Greater(t, report.OverallBalance, 0.0)
}

func TestAnalyze_TargetFlowsToDetector(t *testing.T) {
	s := testService(t)

	report, err := s.Analyze(context.Background(), "Gimlet", flavor.TargetMoreAromatic)
	require.NoError(t, err)
	require.NotEmpty(t, report.Imbalances)
	assert.Equal(t, flavor.Aromatic, report.Imbalances[0].Dimension)
	assert.Equal(t, balance.PriorityHigh, report.Imbalances[0].Priority)
}

func TestAnalyze_CacheRoundTrip(t *testing.T) {
	cache := newFakeCache()
	var cachedCalls, freshCalls int
	s := testService(t,
		WithCache(cache, time.Minute),
		WithObserver(func(_ time.Duration, cached bool) {
			if cached {
				cachedCalls++
			} else {
				freshCalls++
			}
		}),
	)

	first, err := s.Analyze(context.Background(), "Gimlet", flavor.TargetNone)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := s.Analyze(context.Background(), "Gimlet", flavor.TargetNone)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "second call is served from cache")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, freshCalls)
	assert.Equal(t, 1, cachedCalls)

	// A different target is a different cache entry.
	_, err = s.Analyze(context.Background(), "Gimlet", flavor.TargetSweeter)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}

func TestAnalyze_CorruptCacheEntryRecomputes(t *testing.T) {
	cache := newFakeCache()
	cache.entries[cacheKey("Gimlet", flavor.TargetNone)] = []byte("{not json")
	s := testService(t, WithCache(cache, time.Minute))

	report, err := s.Analyze(context.Background(), "Gimlet", flavor.TargetNone)
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
}

func TestNames(t *testing.T) {
	s := testService(t)
	assert.Equal(t, []string{"Gimlet"}, s.Names())
}
