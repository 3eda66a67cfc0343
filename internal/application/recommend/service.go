package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// Assessment thresholds on the overall balance score.
const (
	DefaultExcellenceThreshold = 0.98
	wellBalancedThreshold      = 0.95
	wellBalancedMaxDeviation   = 0.25
	goodThreshold              = 0.85
)

// Assessment messages, surfaced verbatim in CLI and API responses.
const (
	msgExcellent    = "Cocktail is already excellently balanced! No changes recommended."
	msgWellBalanced = "Cocktail is very well balanced. Only minor refinements possible."
	msgGood         = "Good cocktail with room for refinement"
	msgImbalanced   = "Cocktail has imbalances that could be improved"
)

// Result is the full recommendation response for one cocktail.
type Result struct {
	ID              string              `json:"id"`
	Cocktail        string              `json:"cocktail"`
	OverallBalance  float64             `json:"overall_balance"`
	ShouldRecommend bool                `json:"should_recommend"`
	Message         string              `json:"message"`
	Imbalances      []balance.Imbalance `json:"imbalances"`
	Recommendations []Recommendation    `json:"recommendations"`
	Best            *Evaluated          `json:"best,omitempty"`
	Evaluated       []Evaluated         `json:"evaluated,omitempty"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// Service orchestrates the recommendation pipeline: analyze, assess,
// generate candidates per imbalance, size them, and optionally verify the
// top candidates through simulation.
type Service struct {
	source    analysis.CocktailSource
	analyzer  *analysis.Service
	generator *Generator
	amounts   *AmountCalculator
	picker    Picker

	excellenceThreshold float64
	logger              logging.Logger
	onRecommended       func(elapsed time.Duration)
}

// ServiceOption customizes service construction.
type ServiceOption func(*Service)

// WithExcellenceThreshold overrides the balance score above which no
// recommendations are produced.
func WithExcellenceThreshold(threshold float64) ServiceOption {
	return func(s *Service) {
		if threshold > 0 {
			s.excellenceThreshold = threshold
		}
	}
}

// WithRecommendObserver registers a hook invoked after every
// recommendation run, for metrics.
func WithRecommendObserver(fn func(elapsed time.Duration)) ServiceOption {
	return func(s *Service) { s.onRecommended = fn }
}

// NewService wires the recommendation pipeline.
func NewService(
	source analysis.CocktailSource,
	analyzer *analysis.Service,
	generator *Generator,
	amounts *AmountCalculator,
	picker Picker,
	logger logging.Logger,
	opts ...ServiceOption,
) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Service{
		source:              source,
		analyzer:            analyzer,
		generator:           generator,
		amounts:             amounts,
		picker:              picker,
		excellenceThreshold: DefaultExcellenceThreshold,
		logger:              logger.Named("recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend produces recommendations for a cocktail. With best set, the
// configured picker simulates the top candidates and marks the winner.
func (s *Service) Recommend(ctx context.Context, name string, target flavor.Target, best bool) (*Result, error) {
	start := time.Now()

	c, ok := s.source.Find(name)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeCocktailNotFound, "cocktail %q not found", name)
	}

	report, err := s.analyzer.Analyze(ctx, name, target)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:             uuid.NewString(),
		Cocktail:       c.Name,
		OverallBalance: report.OverallBalance,
		Imbalances:     report.Imbalances,
		GeneratedAt:    time.Now().UTC(),
	}
	result.ShouldRecommend, result.Message = s.assess(
		report.OverallBalance,
		report.Profile.TasteScores.MaxDeviation(),
	)
	if !result.ShouldRecommend {
		s.observe(start)
		return result, nil
	}

	mean := report.Profile.TasteScores.Mean()
	for _, imb := range report.Imbalances {
		for _, cand := range s.generator.Generate(c, imb) {
			amount := s.amounts.Amount(
				c.TotalVolumeML(),
				report.OverallBalance,
				report.Profile.TasteScores[imb.Dimension],
				mean,
			)
			if amount == 0 {
				continue
			}
			result.Recommendations = append(result.Recommendations, Recommendation{
				Ingredient:            cand.Ingredient,
				AmountML:              amount,
				Dimension:             imb.Dimension,
				Kind:                  imb.Kind,
				Priority:              imb.Priority,
				Reason:                reason(cand.Ingredient, imb),
				PredictedTasteProfile: cand.TasteProfile,
			})
		}
	}

	if best && len(result.Recommendations) > 0 {
		winner, evaluated, err := s.picker.Best(c, result.Recommendations)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSimulationFailed, "candidate verification failed")
		}
		result.Best = winner
		result.Evaluated = evaluated
	}

	s.logger.Debug("recommendations generated",
		logging.String("cocktail", c.Name),
		logging.Int("count", len(result.Recommendations)),
		logging.Bool("best_mode", best),
	)
	s.observe(start)
	return result, nil
}

func (s *Service) observe(start time.Time) {
	if s.onRecommended != nil {
		s.onRecommended(time.Since(start))
	}
}

// assess classifies the drink and decides whether recommending is worth
// it at all.
func (s *Service) assess(overallBalance, maxDeviation float64) (shouldRecommend bool, message string) {
	switch {
	case overallBalance >= s.excellenceThreshold:
		return false, msgExcellent
	case overallBalance >= wellBalancedThreshold && maxDeviation < wellBalancedMaxDeviation:
		return false, msgWellBalanced
	case overallBalance >= goodThreshold:
		return true, msgGood
	default:
		return true, msgImbalanced
	}
}

func reason(ing string, imb balance.Imbalance) string {
	if imb.Kind == flavor.TooHigh {
		return fmt.Sprintf("%s counterbalances the dominant %s note", ing, imb.Dimension)
	}
	return fmt.Sprintf("%s lifts the underrepresented %s note", ing, imb.Dimension)
}
