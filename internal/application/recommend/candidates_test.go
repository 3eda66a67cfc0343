package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

func TestGenerate_TooLowRanksByDescendingScore(t *testing.T) {
	g := NewGenerator(Tables{}, testProfiler(t), 0)
	c := negroniVariant()

	candidates := g.Generate(c, balance.Imbalance{
		Dimension: flavor.Sour,
		Kind:      flavor.TooLow,
	})
	require.NotEmpty(t, candidates)

	// lemon juice carries an explicit "sour" keyword on top of citrus/tart,
	// so it outranks the other juices.
	assert.Equal(t, "lemon juice", candidates[0].Ingredient)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
	for _, cand := range candidates {
		require.NotEmpty(t, cand.TasteProfile)
		assert.Equal(t, cand.TasteProfile[flavor.Sour], cand.Score,
			"rank score is the profile's value in the imbalanced dimension")
	}
}

func TestDefaultTables_FullPools(t *testing.T) {
	boost := DefaultTables().Boost

	want := map[flavor.Dimension][]string{
		flavor.Sweet:    {"grenadine"},
		flavor.Sour:     {"vinegar", "citric acid"},
		flavor.Bitter:   {"tonic water"},
		flavor.Aromatic: {"rosemary", "thyme"},
		flavor.Savory:   {"olive brine", "worcestershire sauce"},
	}
	for dim, names := range want {
		for _, name := range names {
			assert.Contains(t, boost[dim], name)
		}
	}
}

func TestGenerate_TooHighDrawsFromContrastPool(t *testing.T) {
	g := NewGenerator(Tables{}, testProfiler(t), 0)
	c := negroniVariant()

	candidates := g.Generate(c, balance.Imbalance{
		Dimension: flavor.Bitter,
		Kind:      flavor.TooHigh,
	})
	require.NotEmpty(t, candidates)

	// bitter contrasts with sweet, so the pool is the sweet table.
	sweetPool := map[string]bool{}
	for _, name := range DefaultTables().Boost[flavor.Sweet] {
		sweetPool[name] = true
	}
	for _, cand := range candidates {
		assert.True(t, sweetPool[cand.Ingredient], cand.Ingredient)
	}
	// ascending: prefer the least reinforcing candidate first
	for i := 1; i < len(candidates); i++ {
		assert.LessOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestGenerate_SkipsPresentAndUnknownIngredients(t *testing.T) {
	g := NewGenerator(Tables{}, testProfiler(t), 0)
	c := &cocktail.Cocktail{
		Name: "Honeyed",
		Ingredients: []cocktail.Ingredient{
			{Name: "Honey", VolumeML: 20},
			{Name: "vodka", VolumeML: 40},
		},
	}

	candidates := g.Generate(c, balance.Imbalance{
		Dimension: flavor.Sweet,
		Kind:      flavor.TooLow,
	})
	for _, cand := range candidates {
		assert.NotEqual(t, "honey", cand.Ingredient, "already in the recipe")
		// sugar and maple syrup have no molecular data in the fixture
		assert.NotEqual(t, "sugar", cand.Ingredient)
		assert.NotEqual(t, "maple syrup", cand.Ingredient)
	}
}

func TestGenerate_RespectsCap(t *testing.T) {
	g := NewGenerator(Tables{}, testProfiler(t), 2)
	candidates := g.Generate(negroniVariant(), balance.Imbalance{
		Dimension: flavor.Sour,
		Kind:      flavor.TooLow,
	})
	assert.LessOrEqual(t, len(candidates), 2)
}

func TestGenerate_SweetContrastsWithSour(t *testing.T) {
	tables := DefaultTables()
	assert.Equal(t, flavor.Sour, tables.Contrast[flavor.Sweet])
	for _, d := range []flavor.Dimension{flavor.Sour, flavor.Bitter, flavor.Savory, flavor.Aromatic} {
		assert.Equal(t, flavor.Sweet, tables.Contrast[d])
	}
}

func TestGenerate_CustomTables(t *testing.T) {
	tables := Tables{
		Boost: map[flavor.Dimension][]string{
			flavor.Sour: {"lime juice"},
		},
		Contrast: map[flavor.Dimension]flavor.Dimension{},
	}
	g := NewGenerator(tables, testProfiler(t), 0)

	candidates := g.Generate(negroniVariant(), balance.Imbalance{
		Dimension: flavor.Sour,
		Kind:      flavor.TooLow,
	})
	require.Len(t, candidates, 1)
	assert.Equal(t, "lime juice", candidates[0].Ingredient)
}
