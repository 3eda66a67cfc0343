package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/pkg/errors"
)

const recipeFixture = `[
  {
    "idDrink": "11000",
    "strDrink": "Margarita",
    "strCategory": "Ordinary Drink",
    "strIngredient1": "Tequila",
    "strMeasure1": "1 1/2 oz",
    "strIngredient2": "Triple sec",
    "strMeasure2": "1/2 oz",
    "strIngredient3": "Lime juice",
    "strMeasure3": "1 oz",
    "strIngredient4": null,
    "strMeasure4": null
  },
  {
    "idDrink": "11001",
    "strDrink": "Old Fashioned",
    "strCategory": "Cocktail",
    "strIngredient1": "Bourbon",
    "strMeasure1": "4.5 cl",
    "strIngredient2": "Angostura bitters",
    "strMeasure2": "2 dashes",
    "strIngredient3": "Sugar",
    "strMeasure3": ""
  },
  {
    "idDrink": "11002",
    "strDrink": "",
    "strIngredient1": "Ghost"
  }
]`

func TestLoadRecipeBook(t *testing.T) {
	book, err := LoadRecipeBook(writeFixture(t, "recipes.json", recipeFixture), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, book.Len(), "nameless drink is skipped")
	assert.Equal(t, []string{"Margarita", "Old Fashioned"}, book.Names())

	marg, ok := book.Find("margarita")
	require.True(t, ok)
	assert.Equal(t, "Margarita", marg.Name)
	assert.Equal(t, "Ordinary Drink", marg.Category)
	require.Len(t, marg.Ingredients, 3)
	assert.Equal(t, "tequila", marg.Ingredients[0].Name)
	assert.InDelta(t, 45.0, marg.Ingredients[0].VolumeML, 1e-9)
	assert.InDelta(t, 15.0, marg.Ingredients[1].VolumeML, 1e-9)
	assert.InDelta(t, 30.0, marg.Ingredients[2].VolumeML, 1e-9)

	of, ok := book.Find("Old Fashioned")
	require.True(t, ok)
	require.Len(t, of.Ingredients, 3)
	assert.InDelta(t, 45.0, of.Ingredients[0].VolumeML, 1e-9)
	assert.InDelta(t, 2.0, of.Ingredients[1].VolumeML, 1e-9)
	assert.Equal(t, 0.0, of.Ingredients[2].VolumeML, "measureless ingredient keeps zero volume")
}

func TestLoadRecipeBook_FindMiss(t *testing.T) {
	book, err := LoadRecipeBook(writeFixture(t, "recipes.json", recipeFixture), nil)
	require.NoError(t, err)

	_, ok := book.Find("Vesper")
	assert.False(t, ok)
}

func TestLoadRecipeBook_IngredientFrequencies(t *testing.T) {
	book, err := LoadRecipeBook(writeFixture(t, "recipes.json", recipeFixture), nil)
	require.NoError(t, err)

	freq := book.IngredientFrequencies()
	assert.Equal(t, 1, freq["tequila"])
	assert.Equal(t, 1, freq["angostura bitters"])
	assert.Equal(t, 1, freq["sugar"])
	assert.NotContains(t, freq, "ghost", "skipped drinks do not count")
}

func TestLoadRecipeBook_Errors(t *testing.T) {
	_, err := LoadRecipeBook("/nonexistent/recipes.json", nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDataLoad))

	_, err = LoadRecipeBook(writeFixture(t, "bad.json", "[{"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDataLoad))
}
