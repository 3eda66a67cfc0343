// Package ingredient turns molecule sets into quantitative flavor profiles.
// The profiler is the first scoring stage of the pipeline: everything
// downstream (aggregation, balance, recommendations) consumes its output.
package ingredient

import (
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Profile is the molecular flavor profile of a single ingredient. An
// ingredient with no molecular data gets the zero profile: all-zero taste
// vector, empty keyword tables. The pipeline never fails on a missing
// ingredient; it degrades to zero contribution.
type Profile struct {
	Ingredient       string             `json:"ingredient"`
	NumMolecules     int                `json:"num_molecules"`
	FlavorKeywords   map[string]int     `json:"flavor_keywords"`
	FunctionalGroups map[string]int     `json:"functional_groups"`
	TasteScores      flavor.TasteVector `json:"taste_scores"`
	AvgMolecularWeight float64          `json:"avg_molecular_weight"`
	AvgXLogP           float64          `json:"avg_xlogp"`
	AromaticIntensity  float64          `json:"aromatic_intensity"`
	Volatility         float64          `json:"volatility_estimate"`
}

// EmptyProfile returns the canonical zero profile for an ingredient with no
// molecular matches.
func EmptyProfile(ingredient string) *Profile {
	return &Profile{
		Ingredient:       ingredient,
		FlavorKeywords:   map[string]int{},
		FunctionalGroups: map[string]int{},
		TasteScores:      flavor.NewTasteVector(),
	}
}

// IsEmpty reports whether the profile carries no molecular data.
func (p *Profile) IsEmpty() bool {
	return p.NumMolecules == 0
}
