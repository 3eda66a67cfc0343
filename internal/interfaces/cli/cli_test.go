package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
)

const moleculeFixture = `[
  {
    "category_readable": "Fruit",
    "natural_source_name": "Lime",
    "entity_alias": "lime juice",
    "molecules": [
      {"pubchem_id": 311, "common_name": "Citric acid", "flavor_profile": "sour@acidic", "molecular_weight": 192.12}
    ]
  },
  {
    "category_readable": "Spirit",
    "natural_source_name": "Tequila",
    "entity_alias": "",
    "molecules": [
      {"pubchem_id": 702, "common_name": "Ethanol", "flavor_profile": "pungent", "molecular_weight": 46.07}
    ]
  }
]`

const recipeFixture = `[
  {
    "idDrink": "11000",
    "strDrink": "Margarita",
    "strCategory": "Ordinary Drink",
    "strIngredient1": "Tequila",
    "strMeasure1": "1 1/2 oz",
    "strIngredient2": "Lime juice",
    "strMeasure2": "1 oz"
  }
]`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	molPath := filepath.Join(dir, "molecules.json")
	recPath := filepath.Join(dir, "recipes.json")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(molPath, []byte(moleculeFixture), 0o644))
	require.NoError(t, os.WriteFile(recPath, []byte(recipeFixture), 0o644))

	cfgYAML := "data:\n  molecule_file: " + molPath + "\n  recipe_file: " + recPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))
	return cfgPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Margarita")
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "analyze", "Margarita")
	require.NoError(t, err)
	assert.Contains(t, out, "Margarita")
	assert.Contains(t, out, "Balance:")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "-o", "json", "analyze", "Margarita")
	require.NoError(t, err)
	assert.Contains(t, out, `"overall_balance"`)
}

func TestAnalyzeCommand_UnknownCocktail(t *testing.T) {
	_, err := runCommand(t, "--config", writeTestConfig(t), "analyze", "Vesper")
	assert.Error(t, err)
}

func TestAnalyzeCommand_BadTarget(t *testing.T) {
	_, err := runCommand(t, "--config", writeTestConfig(t), "analyze", "Margarita", "--target", "saltier")
	assert.Error(t, err)
}

func TestRecommendCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "recommend", "Margarita")
	require.NoError(t, err)
	assert.Contains(t, out, "balance")
}

func TestSimulateCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t),
		"simulate", "Margarita", "--add", "simple syrup:10")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:")
}

func TestSimulateCommand_NoModifications(t *testing.T) {
	_, err := runCommand(t, "--config", writeTestConfig(t), "simulate", "Margarita")
	assert.Error(t, err)
}

func TestCollectModifications(t *testing.T) {
	mods, err := collectModifications(
		[]string{"simple syrup:10"},
		[]string{"salt"},
		[]string{"lime juice:5"},
		[]string{"tequila:10"},
		[]string{"tequila=mezcal"},
	)
	require.NoError(t, err)
	require.Len(t, mods, 5)

	assert.Equal(t, cocktail.ActionAdd, mods[0].Action)
	assert.Equal(t, "simple syrup", mods[0].Ingredient)
	assert.Equal(t, 10.0, mods[0].AmountML)
	assert.Equal(t, cocktail.ActionRemove, mods[1].Action)
	assert.Equal(t, cocktail.ActionIncrease, mods[2].Action)
	assert.Equal(t, cocktail.ActionDecrease, mods[3].Action)
	assert.Equal(t, cocktail.ActionSubstitute, mods[4].Action)
	assert.Equal(t, "mezcal", mods[4].SubstituteWith)
}

func TestCollectModifications_Invalid(t *testing.T) {
	_, err := collectModifications([]string{"no-amount"}, nil, nil, nil, nil)
	assert.Error(t, err)

	_, err = collectModifications([]string{"syrup:-4"}, nil, nil, nil, nil)
	assert.Error(t, err)

	_, err = collectModifications(nil, nil, nil, nil, []string{"tequila"})
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := formatTable([]string{"NAME", "ML"}, [][]string{
		{"tequila", "45"},
		{"lime juice", "30"},
	})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "lime juice  30")
}
