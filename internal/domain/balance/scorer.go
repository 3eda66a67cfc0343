// Package balance scores how even a drink's taste vector is and detects
// which dimensions are out of line.
package balance

import (
	"math"

	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Complexity saturation points: a drink with this many distinct keywords or
// functional groups scores full marks on that half of the complexity axis.
const (
	keywordSaturation = 30.0
	groupSaturation   = 10.0
)

// Scorer computes the drink-level balance and complexity scores.
type Scorer struct{}

// NewScorer constructs a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// OverallBalance maps the taste vector's population variance into (0,1]:
// a perfectly even vector scores 1.0 and the score decays as the dimensions
// spread apart. An all-zero vector has zero variance and therefore scores
// 1.0 as well; nothing dominates a drink with no signal.
func (s *Scorer) OverallBalance(v flavor.TasteVector) float64 {
	return 1.0 / (1.0 + v.Variance())
}

// Complexity averages two saturating ratios: distinct flavor keywords
// against 30 and distinct functional groups against 10. Both counts come
// from the untruncated per-ingredient union, not the display tables.
func (s *Scorer) Complexity(uniqueKeywords, uniqueGroups int) float64 {
	kw := math.Min(float64(uniqueKeywords)/keywordSaturation, 1.0)
	grp := math.Min(float64(uniqueGroups)/groupSaturation, 1.0)
	return (kw + grp) / 2.0
}
