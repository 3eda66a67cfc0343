// Package recommend implements the recommendation use case: generate
// candidate ingredients for each detected imbalance, size them adaptively,
// and optionally verify them through simulated re-analysis.
package recommend

import (
	"sort"

	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// DefaultCandidateCap bounds how many candidates one imbalance yields.
const DefaultCandidateCap = 5

// Tables holds the candidate pools. Boost lists ingredients that raise a
// dimension; Contrast names the dimension to raise when one is too high
// (everything contrasts with sweet, sweet itself with sour).
type Tables struct {
	Boost    map[flavor.Dimension][]string
	Contrast map[flavor.Dimension]flavor.Dimension
}

// DefaultTables returns the curated candidate pools.
func DefaultTables() Tables {
	return Tables{
		Boost: map[flavor.Dimension][]string{
			flavor.Sweet:    {"simple syrup", "honey", "agave syrup", "sugar", "maple syrup", "grenadine"},
			flavor.Sour:     {"lemon juice", "lime juice", "grapefruit juice", "vinegar", "citric acid"},
			flavor.Bitter:   {"angostura bitters", "campari", "aperol", "coffee", "tonic water"},
			flavor.Aromatic: {"mint", "basil", "bitters", "orange bitters", "rosemary", "thyme"},
			flavor.Savory:   {"celery", "tomato juice", "olive brine", "worcestershire sauce"},
		},
		Contrast: map[flavor.Dimension]flavor.Dimension{
			flavor.Sweet:    flavor.Sour,
			flavor.Sour:     flavor.Sweet,
			flavor.Bitter:   flavor.Sweet,
			flavor.Savory:   flavor.Sweet,
			flavor.Aromatic: flavor.Sweet,
		},
	}
}

// Candidate is one suggested ingredient for an imbalance, with its own
// score in the imbalanced dimension used for ranking and its full taste
// profile so callers can show the predicted per-dimension impact.
type Candidate struct {
	Ingredient   string               `json:"ingredient"`
	Dimension    flavor.Dimension     `json:"dimension"`
	Kind         flavor.ImbalanceKind `json:"kind"`
	Score        float64              `json:"score"`
	TasteProfile flavor.TasteVector   `json:"taste_profile"`
}

// Generator produces ranked candidates for an imbalance.
type Generator struct {
	tables   Tables
	profiler *ingredient.Profiler
	cap      int
}

// NewGenerator constructs a generator. A zero cap falls back to the
// default; empty tables fall back to the curated ones.
func NewGenerator(tables Tables, profiler *ingredient.Profiler, cap int) *Generator {
	if tables.Boost == nil {
		tables = DefaultTables()
	}
	if cap <= 0 {
		cap = DefaultCandidateCap
	}
	return &Generator{tables: tables, profiler: profiler, cap: cap}
}

// Generate returns candidates for one imbalance, best first. A dimension
// that is too low draws from its own boost pool and ranks candidates by
// descending score in that dimension; a dimension that is too high draws
// from its contrast pool and ranks ascending, preferring candidates that
// dilute rather than reinforce. Ingredients already in the recipe and
// ingredients with no molecular data are skipped.
func (g *Generator) Generate(c *cocktail.Cocktail, imb balance.Imbalance) []Candidate {
	pool := g.tables.Boost[imb.Dimension]
	if imb.Kind == flavor.TooHigh {
		pool = g.tables.Boost[g.tables.Contrast[imb.Dimension]]
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, name := range pool {
		if c.Contains(name) {
			continue
		}
		profile := g.profiler.Profile(name)
		if profile.IsEmpty() {
			continue
		}
		candidates = append(candidates, Candidate{
			Ingredient:   name,
			Dimension:    imb.Dimension,
			Kind:         imb.Kind,
			Score:        profile.TasteScores[imb.Dimension],
			TasteProfile: profile.TasteScores,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if imb.Kind == flavor.TooHigh {
			return candidates[i].Score < candidates[j].Score
		}
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > g.cap {
		candidates = candidates[:g.cap]
	}
	return candidates
}
