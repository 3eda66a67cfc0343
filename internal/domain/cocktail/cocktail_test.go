package cocktail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/pkg/errors"
)

func margarita() *Cocktail {
	return &Cocktail{
		Name:     "Margarita",
		Category: "Sour",
		Ingredients: []Ingredient{
			{Name: "tequila", VolumeML: 50},
			{Name: "lime juice", VolumeML: 25},
			{Name: "triple sec", VolumeML: 20},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", "Sour", []Ingredient{{Name: "gin", VolumeML: 50}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCocktailDataInvalid))

	_, err = New("Empty Glass", "", nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCocktailDataInvalid))

	c, err := New("Gimlet", "Sour", []Ingredient{
		{Name: "gin", VolumeML: 60},
		{Name: "lime juice", VolumeML: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gimlet", c.Name)
	assert.Len(t, c.Ingredients, 2)
}

func TestClone_IsDeep(t *testing.T) {
	original := margarita()
	clone := original.Clone()

	clone.Ingredients[0].VolumeML = 999
	clone.Ingredients = append(clone.Ingredients, Ingredient{Name: "salt", VolumeML: 1})

	assert.Equal(t, 50.0, original.Ingredients[0].VolumeML)
	assert.Len(t, original.Ingredients, 3)
}

func TestTotalVolumeML(t *testing.T) {
	assert.Equal(t, 95.0, margarita().TotalVolumeML())
	assert.Equal(t, 0.0, (&Cocktail{Name: "x"}).TotalVolumeML())
}

func TestIngredientNames(t *testing.T) {
	assert.Equal(t, []string{"tequila", "lime juice", "triple sec"}, margarita().IngredientNames())
}

func TestContains_CaseInsensitive(t *testing.T) {
	c := margarita()
	assert.True(t, c.Contains("Lime Juice"))
	assert.True(t, c.Contains("  tequila "))
	assert.False(t, c.Contains("mezcal"))
}
