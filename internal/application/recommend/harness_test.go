package recommend

import (
	"testing"

	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
)

const testEpsilon = 1e-9

// fixtureSource is a map-backed recipe book for tests.
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

// testMolecules covers the base spirits plus the candidate pools the
// generator draws from, with deliberately skewed flavor keywords.
func testMolecules() []*molecule.Molecule {
	return []*molecule.Molecule{
		{ID: 1, Sources: []string{"vodka"}, FlavorKeywords: []string{"neutral"}, MolecularWeight: 46},
		{ID: 2, Sources: []string{"campari"}, Bitter: true, FlavorKeywords: []string{"bitter", "herbal"}, MolecularWeight: 250},
		{ID: 3, Sources: []string{"lemon juice"}, FlavorKeywords: []string{"citrus", "tart", "sour"}, MolecularWeight: 192},
		{ID: 4, Sources: []string{"lime juice"}, FlavorKeywords: []string{"citrus", "tart"}, MolecularWeight: 190},
		{ID: 5, Sources: []string{"grapefruit juice"}, FlavorKeywords: []string{"citrus"}, MolecularWeight: 180},
		{ID: 6, Sources: []string{"simple syrup"}, Sweet: true, FlavorKeywords: []string{"sweet", "sugar"}, MolecularWeight: 342},
		{ID: 7, Sources: []string{"honey"}, Sweet: true, FlavorKeywords: []string{"sweet", "honey", "floral"}, MolecularWeight: 180},
		{ID: 8, Sources: []string{"agave syrup"}, Sweet: true, FlavorKeywords: []string{"sweet"}, MolecularWeight: 342},
		{ID: 9, Sources: []string{"mint"}, FlavorKeywords: []string{"herbal", "fragrant"}, MolecularWeight: 156},
		{ID: 10, Sources: []string{"basil"}, FlavorKeywords: []string{"herbal"}, MolecularWeight: 160},
	}
}

func testProfiler(t *testing.T) *ingredient.Profiler {
	t.Helper()
	idx := molecule.NewIndex(testMolecules(), nil, molecule.WithKeywordRules(nil))
	return ingredient.NewProfiler(idx, nil)
}

func testAnalyzer(t *testing.T, source analysis.CocktailSource) *analysis.Service {
	t.Helper()
	return analysis.NewService(
		source,
		testProfiler(t),
		cocktail.NewAggregator(0, 0),
		balance.NewScorer(),
		balance.NewDetector(0, 0),
		nil,
	)
}

// negroniVariant is deliberately bitter-heavy so detection fires.
func negroniVariant() *cocktail.Cocktail {
	return &cocktail.Cocktail{
		Name:     "Bitter Trouble",
		Category: "Aperitif",
		Ingredients: []cocktail.Ingredient{
			{Name: "campari", VolumeML: 60},
			{Name: "vodka", VolumeML: 30},
		},
	}
}
