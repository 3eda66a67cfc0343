package recommend

import (
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// DefaultSelectorTopN bounds how many recommendations the selector tests
// through simulation.
const DefaultSelectorTopN = 5

// Recommendation is one suggested addition to a recipe.
// PredictedTasteProfile is the candidate ingredient's own taste vector,
// the per-dimension impact the addition would pull the drink towards.
type Recommendation struct {
	Ingredient            string               `json:"ingredient"`
	AmountML              float64              `json:"amount_ml"`
	Dimension             flavor.Dimension     `json:"dimension"`
	Kind                  flavor.ImbalanceKind `json:"kind"`
	Priority              string               `json:"priority"`
	Reason                string               `json:"reason"`
	PredictedTasteProfile flavor.TasteVector   `json:"predicted_taste_profile"`
}

// Evaluated is a recommendation with its simulated effect. Combined is the
// ranking key: the raw selector sets it to the balance improvement, the
// plausibility reranker to improvement times plausibility.
type Evaluated struct {
	Recommendation
	Improvement  float64 `json:"improvement"`
	Plausibility float64 `json:"plausibility,omitempty"`
	Combined     float64 `json:"combined"`
}

// Picker chooses the best recommendation by simulated verification. The
// raw selector and its plausibility-reranking decorator both satisfy it.
type Picker interface {
	Best(base *cocktail.Cocktail, recs []Recommendation) (*Evaluated, []Evaluated, error)
}

// Selector simulates the top-N recommendations against the recipe and
// picks the one with the largest balance improvement.
type Selector struct {
	simulator *Simulator
	topN      int
	logger    logging.Logger
}

// NewSelector constructs a selector; a non-positive topN falls back to the
// default.
func NewSelector(simulator *Simulator, topN int, logger logging.Logger) *Selector {
	if topN <= 0 {
		topN = DefaultSelectorTopN
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Selector{simulator: simulator, topN: topN, logger: logger.Named("selector")}
}

// Evaluate simulates each of the top-N recommendations as a single
// addition to the base recipe and returns them in their original rank
// order with Combined set to the raw improvement.
func (s *Selector) Evaluate(base *cocktail.Cocktail, recs []Recommendation) ([]Evaluated, error) {
	if len(recs) > s.topN {
		recs = recs[:s.topN]
	}

	evaluated := make([]Evaluated, 0, len(recs))
	for _, rec := range recs {
		result, err := s.simulator.Simulate(base, []cocktail.Modification{{
			Action:     cocktail.ActionAdd,
			Ingredient: rec.Ingredient,
			AmountML:   rec.AmountML,
		}})
		if err != nil {
			return nil, err
		}
		evaluated = append(evaluated, Evaluated{
			Recommendation: rec,
			Improvement:    result.Improvement,
			Combined:       result.Improvement,
		})
	}
	return evaluated, nil
}

// Best returns the highest-Combined evaluation plus the full evaluation
// list. Ties keep the earlier (higher-ranked) recommendation. A nil best
// with a nil error means there was nothing to evaluate.
func (s *Selector) Best(base *cocktail.Cocktail, recs []Recommendation) (*Evaluated, []Evaluated, error) {
	evaluated, err := s.Evaluate(base, recs)
	if err != nil {
		return nil, nil, err
	}
	return pickBest(evaluated), evaluated, nil
}

// pickBest scans in rank order and keeps the first strictly-greater
// Combined score.
func pickBest(evaluated []Evaluated) *Evaluated {
	if len(evaluated) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(evaluated); i++ {
		if evaluated[i].Combined > evaluated[best].Combined {
			best = i
		}
	}
	return &evaluated[best]
}
