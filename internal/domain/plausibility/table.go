// Package plausibility scores how common an ingredient is across a recipe
// corpus. The recommender uses it to keep molecularly sound but culinarily
// odd suggestions from outranking everyday ones.
package plausibility

import (
	"math"
	"sort"
	"strings"
)

// DefaultScore is returned for ingredients the corpus has never seen. It
// sits in the middle of the scale so unknowns are neither promoted nor
// buried.
const DefaultScore = 0.5

// Table maps ingredient names to log-scaled frequency scores in [0,1].
// Lookups are case-insensitive and fall back to substring matching in both
// directions, so "juice of 1 lime" still finds "lime juice" territory.
type Table struct {
	scores map[string]float64
	keys   []string
}

// NewTable builds a table from raw occurrence counts. Scores are
// log(count+1)/log(max+1): the most frequent ingredient scores 1.0 and the
// curve flattens quickly, so a 10x count gap does not mean a 10x score gap.
func NewTable(frequencies map[string]int) *Table {
	maxCount := 0
	for _, c := range frequencies {
		if c > maxCount {
			maxCount = c
		}
	}

	scores := make(map[string]float64, len(frequencies))
	if maxCount > 0 {
		denom := math.Log(float64(maxCount) + 1)
		for name, c := range frequencies {
			if c < 0 {
				c = 0
			}
			scores[strings.ToLower(strings.TrimSpace(name))] = math.Log(float64(c)+1) / denom
		}
	}
	return newTable(scores)
}

// NewTableFromScores builds a table from precomputed scores, clamping each
// into [0,1].
func NewTableFromScores(scores map[string]float64) *Table {
	normalized := make(map[string]float64, len(scores))
	for name, s := range scores {
		normalized[strings.ToLower(strings.TrimSpace(name))] = math.Max(0, math.Min(s, 1))
	}
	return newTable(normalized)
}

func newTable(scores map[string]float64) *Table {
	// Sorted key list makes the substring fallback deterministic.
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Table{scores: scores, keys: keys}
}

// Score returns the plausibility of an ingredient. Resolution order: exact
// lookup, then the first table key that contains the query or is contained
// by it, then DefaultScore.
func (t *Table) Score(ingredient string) float64 {
	name := strings.ToLower(strings.TrimSpace(ingredient))
	if name == "" {
		return DefaultScore
	}

	if s, ok := t.scores[name]; ok {
		return s
	}
	for _, key := range t.keys {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return t.scores[key]
		}
	}
	return DefaultScore
}

// Len returns the number of distinct ingredients in the table.
func (t *Table) Len() int {
	return len(t.scores)
}
