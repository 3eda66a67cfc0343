package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/config"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
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

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	molPath := filepath.Join(dir, "molecules.json")
	recPath := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(molPath, []byte(moleculeFixture), 0o644))
	require.NoError(t, os.WriteFile(recPath, []byte(recipeFixture), 0o644))

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Data.MoleculeFile = molPath
	cfg.Data.RecipeFile = recPath
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNew_WiresPipeline(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, 1, app.Recipes.Len())

	report, err := app.Analyzer.Analyze(context.Background(), "Margarita", flavor.TargetNone)
	require.NoError(t, err)
	assert.Equal(t, "Margarita", report.Cocktail)
	assert.InDelta(t, 75.0, report.TotalVolumeML, 1e-9)

	result, err := app.Recommender.Recommend(context.Background(), "Margarita", flavor.TargetNone, false)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Message)
}

func TestNew_MetricsEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "bootstrap_test"

	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.Metrics)
	assert.NotNil(t, app.Metrics.Handler())
}

func TestNew_MissingMoleculeFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.MoleculeFile = filepath.Join(t.TempDir(), "absent.json")

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNew_ContrastOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Recommend.ContrastOverrides = map[string]string{"sweet": "bitter"}

	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()
}

func TestNew_BadContrastOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Recommend.ContrastOverrides = map[string]string{"umami": "sweet"}

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestRunWatcher_NoWatcherConfigured(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.NoError(t, app.RunWatcher(context.Background()))
}
