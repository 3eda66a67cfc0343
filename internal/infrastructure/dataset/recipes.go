package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// maxRecipeSlots is the upstream dump's fixed ingredient column count
// (strIngredient1..15).
const maxRecipeSlots = 15

// RecipeBook holds the loaded recipes. It satisfies the analysis package's
// CocktailSource and provides the ingredient frequencies the plausibility
// table is built from.
type RecipeBook struct {
	byName      map[string]*cocktail.Cocktail
	names       []string
	frequencies map[string]int
}

// LoadRecipeBook parses a recipe dump in the upstream column format: each
// drink carries strDrink/strCategory plus strIngredientN/strMeasureN pairs.
// Measures convert to milliliters via ParseMeasure; drinks with no usable
// ingredients are skipped.
func LoadRecipeBook(path string, logger logging.Logger) (*RecipeBook, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDataLoad, "recipe file not readable")
	}

	var drinks []map[string]any
	if err := json.Unmarshal(raw, &drinks); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDataLoad, "recipe file not valid JSON")
	}

	book := &RecipeBook{
		byName:      make(map[string]*cocktail.Cocktail, len(drinks)),
		frequencies: make(map[string]int),
	}
	var skipped int
	for _, drink := range drinks {
		c := parseDrink(drink)
		if c == nil {
			skipped++
			continue
		}
		book.byName[molecule.NormalizeName(c.Name)] = c
		for _, ing := range c.Ingredients {
			book.frequencies[ing.Name]++
		}
	}

	book.names = make([]string, 0, len(book.byName))
	for _, c := range book.byName {
		book.names = append(book.names, c.Name)
	}
	sort.Strings(book.names)

	logger.Named("recipe-book").Info("recipe file loaded",
		logging.String("path", path),
		logging.Int("recipes", len(book.byName)),
		logging.Int("skipped", skipped),
	)
	return book, nil
}

func parseDrink(drink map[string]any) *cocktail.Cocktail {
	name := stringField(drink, "strDrink")
	if name == "" {
		return nil
	}

	var ingredients []cocktail.Ingredient
	for i := 1; i <= maxRecipeSlots; i++ {
		ing := stringField(drink, fmt.Sprintf("strIngredient%d", i))
		if ing == "" {
			continue
		}
		measure := stringField(drink, fmt.Sprintf("strMeasure%d", i))
		ingredients = append(ingredients, cocktail.Ingredient{
			Name:     molecule.NormalizeName(ing),
			VolumeML: ParseMeasure(measure),
		})
	}

	c, err := cocktail.New(name, stringField(drink, "strCategory"), ingredients)
	if err != nil {
		return nil
	}
	return c
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// Find returns a recipe by name, case-insensitively.
func (b *RecipeBook) Find(name string) (*cocktail.Cocktail, bool) {
	c, ok := b.byName[molecule.NormalizeName(name)]
	return c, ok
}

// Names lists the loaded recipe names in sorted order.
func (b *RecipeBook) Names() []string {
	return b.names
}

// IngredientFrequencies returns how often each ingredient occurs across
// the book, the input for plausibility scoring.
func (b *RecipeBook) IngredientFrequencies() map[string]int {
	return b.frequencies
}

// Len returns the number of loaded recipes.
func (b *RecipeBook) Len() int {
	return len(b.byName)
}
