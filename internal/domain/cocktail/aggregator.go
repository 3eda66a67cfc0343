package cocktail

import (
	"sort"

	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Default truncation limits for the aggregated keyword/group tables.
const (
	DefaultTopKeywords = 20
	DefaultTopGroups   = 10
)

// WeightedTerm is a keyword or functional group with its volume-weighted
// occurrence count.
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// AggregatedProfile is the drink-level profile: the volume-weighted taste
// vector, the truncated top keyword/group tables, and the untruncated union
// counts the complexity score is computed from.
type AggregatedProfile struct {
	TasteScores        flavor.TasteVector `json:"taste_scores"`
	TopKeywords        []WeightedTerm     `json:"top_keywords"`
	TopGroups          []WeightedTerm     `json:"top_functional_groups"`
	UniqueKeywords     int                `json:"unique_keywords"`
	UniqueGroups       int                `json:"unique_functional_groups"`
	AvgMolecularWeight float64            `json:"avg_molecular_weight"`
	TotalVolumeML      float64            `json:"total_volume_ml"`
}

// Aggregator combines ingredient profiles into a drink profile, weighting by
// volume share. When the total volume is zero the weights fall back to
// uniform 1/n so the arithmetic never divides by zero.
type Aggregator struct {
	topKeywords int
	topGroups   int
}

// NewAggregator constructs an aggregator; non-positive limits fall back to
// the defaults.
func NewAggregator(topKeywords, topGroups int) *Aggregator {
	if topKeywords <= 0 {
		topKeywords = DefaultTopKeywords
	}
	if topGroups <= 0 {
		topGroups = DefaultTopGroups
	}
	return &Aggregator{topKeywords: topKeywords, topGroups: topGroups}
}

// Aggregate combines profiles with their volumes. profiles and volumes are
// parallel slices; a missing volume counts as zero. Aggregating an empty
// input yields an all-zero profile.
func (a *Aggregator) Aggregate(profiles []*ingredient.Profile, volumes []float64) *AggregatedProfile {
	out := &AggregatedProfile{TasteScores: flavor.NewTasteVector()}
	if len(profiles) == 0 {
		return out
	}

	weights, total := volumeWeights(len(profiles), volumes)
	out.TotalVolumeML = total

	weightedKeywords := make(map[string]float64)
	weightedGroups := make(map[string]float64)
	uniqueKeywords := make(map[string]struct{})
	uniqueGroups := make(map[string]struct{})
	var mwSum, mwWeight float64

	for i, p := range profiles {
		w := weights[i]

		for _, d := range flavor.Dimensions() {
			out.TasteScores[d] += p.TasteScores[d] * w
		}

		for kw, count := range p.FlavorKeywords {
			weightedKeywords[kw] += float64(count) * w
			uniqueKeywords[kw] = struct{}{}
		}
		for g, count := range p.FunctionalGroups {
			weightedGroups[g] += float64(count) * w
			uniqueGroups[g] = struct{}{}
		}

		if !p.IsEmpty() && i < len(volumes) {
			mwSum += p.AvgMolecularWeight * volumes[i]
			mwWeight += volumes[i]
		}
	}

	out.TopKeywords = topTerms(weightedKeywords, a.topKeywords)
	out.TopGroups = topTerms(weightedGroups, a.topGroups)
	out.UniqueKeywords = len(uniqueKeywords)
	out.UniqueGroups = len(uniqueGroups)
	if mwWeight > 0 {
		out.AvgMolecularWeight = mwSum / mwWeight
	}
	return out
}

// volumeWeights converts volumes to weights summing to 1. Zero total volume
// falls back to uniform weighting.
func volumeWeights(n int, volumes []float64) ([]float64, float64) {
	var total float64
	for i := 0; i < n && i < len(volumes); i++ {
		total += volumes[i]
	}

	weights := make([]float64, n)
	if total == 0 {
		for i := range weights {
			weights[i] = 1.0 / float64(n)
		}
		return weights, 0
	}
	for i := range weights {
		if i < len(volumes) {
			weights[i] = volumes[i] / total
		}
	}
	return weights, total
}

// topTerms ranks a weighted map and keeps the first limit entries. Equal
// weights tie-break alphabetically so truncation is deterministic.
func topTerms(weighted map[string]float64, limit int) []WeightedTerm {
	terms := make([]WeightedTerm, 0, len(weighted))
	for term, w := range weighted {
		terms = append(terms, WeightedTerm{Term: term, Weight: w})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
