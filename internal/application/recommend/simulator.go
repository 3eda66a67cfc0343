package recommend

import (
	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// SimulationResult compares a recipe before and after a set of
// modifications.
type SimulationResult struct {
	Modifications    []cocktail.Modification `json:"modifications"`
	Before           *analysis.Report        `json:"before"`
	After            *analysis.Report        `json:"after"`
	Improvement      float64                 `json:"improvement"`
	DimensionDeltas  flavor.TasteVector      `json:"dimension_deltas"`
}

// Simulator applies modifications to a copy of a recipe and re-runs the
// analysis pipeline on the result. The base recipe is never mutated.
type Simulator struct {
	analyzer   *analysis.Service
	logger     logging.Logger
	onSimulate func()
}

// SimulatorOption customizes simulator construction.
type SimulatorOption func(*Simulator)

// WithSimulationObserver registers a hook invoked on every simulation.
func WithSimulationObserver(fn func()) SimulatorOption {
	return func(s *Simulator) { s.onSimulate = fn }
}

// NewSimulator constructs a simulator over the analysis service.
func NewSimulator(analyzer *analysis.Service, logger logging.Logger, opts ...SimulatorOption) *Simulator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Simulator{analyzer: analyzer, logger: logger.Named("simulator")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate analyzes the base recipe, applies the modifications to a clone,
// analyzes the result, and reports the balance improvement and the
// per-dimension taste deltas.
func (s *Simulator) Simulate(base *cocktail.Cocktail, mods []cocktail.Modification) (*SimulationResult, error) {
	modified, err := cocktail.Apply(base, mods)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSimulationFailed, "modifications not applicable")
	}
	if s.onSimulate != nil {
		s.onSimulate()
	}

	before := s.analyzer.AnalyzeCocktail(base, flavor.TargetNone)
	after := s.analyzer.AnalyzeCocktail(modified, flavor.TargetNone)

	deltas := flavor.NewTasteVector()
	for _, d := range flavor.Dimensions() {
		deltas[d] = after.Profile.TasteScores[d] - before.Profile.TasteScores[d]
	}

	return &SimulationResult{
		Modifications:   mods,
		Before:          before,
		After:           after,
		Improvement:     after.OverallBalance - before.OverallBalance,
		DimensionDeltas: deltas,
	}, nil
}
