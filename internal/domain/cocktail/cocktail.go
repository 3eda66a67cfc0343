// Package cocktail defines the recipe aggregate, the modification operations
// that the simulator applies to it, and the volume-weighted aggregation of
// ingredient profiles into a single drink-level profile.
package cocktail

import (
	"strings"

	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// Ingredient is one recipe line: a name and a volume already normalized to
// milliliters by the loader.
type Ingredient struct {
	Name     string  `json:"name"`
	VolumeML float64 `json:"volume_ml"`
}

// Cocktail is a named recipe. Instances handed out by a recipe book are
// treated as read-only; modifications always go through Clone.
type Cocktail struct {
	Name        string       `json:"name"`
	Category    string       `json:"category,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}

// New validates and constructs a cocktail.
func New(name, category string, ingredients []Ingredient) (*Cocktail, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeCocktailDataInvalid, "cocktail name is empty")
	}
	if len(ingredients) == 0 {
		return nil, errors.New(errors.ErrCodeCocktailDataInvalid, "cocktail has no ingredients").
			WithDetail("name=" + name)
	}
	return &Cocktail{Name: name, Category: category, Ingredients: ingredients}, nil
}

// Clone returns a deep copy safe to mutate.
func (c *Cocktail) Clone() *Cocktail {
	ingredients := make([]Ingredient, len(c.Ingredients))
	copy(ingredients, c.Ingredients)
	return &Cocktail{Name: c.Name, Category: c.Category, Ingredients: ingredients}
}

// TotalVolumeML returns the sum of all ingredient volumes.
func (c *Cocktail) TotalVolumeML() float64 {
	var total float64
	for _, ing := range c.Ingredients {
		total += ing.VolumeML
	}
	return total
}

// IngredientNames returns the recipe's ingredient names in order.
func (c *Cocktail) IngredientNames() []string {
	names := make([]string, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		names[i] = ing.Name
	}
	return names
}

// Contains reports whether the recipe already includes an ingredient,
// case-insensitively.
func (c *Cocktail) Contains(name string) bool {
	return c.indexOf(name) >= 0
}

func (c *Cocktail) indexOf(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, ing := range c.Ingredients {
		if strings.ToLower(strings.TrimSpace(ing.Name)) == name {
			return i
		}
	}
	return -1
}
