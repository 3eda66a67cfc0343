package recommend

import (
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/plausibility"
)

// PlausibilityReranker decorates a Selector: it keeps the simulated
// improvements but weights each by how common the ingredient is, so a
// molecularly sound but culinarily odd suggestion does not win on
// improvement alone.
type PlausibilityReranker struct {
	inner *Selector
	table *plausibility.Table
}

// NewPlausibilityReranker wraps a selector with a plausibility table.
func NewPlausibilityReranker(inner *Selector, table *plausibility.Table) *PlausibilityReranker {
	return &PlausibilityReranker{inner: inner, table: table}
}

// Best evaluates through the wrapped selector, rescores Combined as
// improvement times plausibility, and picks the winner with the same
// strictly-greater scan.
func (r *PlausibilityReranker) Best(base *cocktail.Cocktail, recs []Recommendation) (*Evaluated, []Evaluated, error) {
	evaluated, err := r.inner.Evaluate(base, recs)
	if err != nil {
		return nil, nil, err
	}
	for i := range evaluated {
		evaluated[i].Plausibility = r.table.Score(evaluated[i].Ingredient)
		evaluated[i].Combined = evaluated[i].Improvement * evaluated[i].Plausibility
	}
	return pickBest(evaluated), evaluated, nil
}
