// Package analysis implements the cocktail analysis use case: find the
// recipe, profile each ingredient, aggregate by volume, score balance and
// complexity, and detect imbalances.
package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// CocktailSource resolves recipes by name. The file-backed recipe book and
// test fixtures both satisfy it.
type CocktailSource interface {
	Find(name string) (*cocktail.Cocktail, bool)
	Names() []string
}

// Cache stores serialized analysis reports. The in-memory and redis caches
// both satisfy it; a nil cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IngredientBreakdown is one recipe line with its computed profile.
type IngredientBreakdown struct {
	Name     string              `json:"name"`
	VolumeML float64             `json:"volume_ml"`
	Profile  *ingredient.Profile `json:"profile"`
}

// Report is the full analysis result for one cocktail.
type Report struct {
	ID             string                      `json:"id"`
	Cocktail       string                      `json:"cocktail"`
	Category       string                      `json:"category,omitempty"`
	TotalVolumeML  float64                     `json:"total_volume_ml"`
	Ingredients    []IngredientBreakdown       `json:"ingredients"`
	Profile        *cocktail.AggregatedProfile `json:"profile"`
	OverallBalance float64                     `json:"overall_balance"`
	Complexity     float64                     `json:"complexity"`
	Imbalances     []balance.Imbalance         `json:"imbalances"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}

// Service runs the analysis pipeline.
type Service struct {
	source     CocktailSource
	profiler   *ingredient.Profiler
	aggregator *cocktail.Aggregator
	scorer     *balance.Scorer
	detector   *balance.Detector
	cache      Cache
	cacheTTL   time.Duration
	logger     logging.Logger
	onAnalyzed func(elapsed time.Duration, cached bool)
}

// Option customizes service construction.
type Option func(*Service)

// WithCache enables report caching with the given TTL.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithObserver registers a hook invoked after every analysis, for metrics.
func WithObserver(fn func(elapsed time.Duration, cached bool)) Option {
	return func(s *Service) { s.onAnalyzed = fn }
}

// NewService wires the analysis pipeline.
func NewService(
	source CocktailSource,
	profiler *ingredient.Profiler,
	aggregator *cocktail.Aggregator,
	scorer *balance.Scorer,
	detector *balance.Detector,
	logger logging.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Service{
		source:     source,
		profiler:   profiler,
		aggregator: aggregator,
		scorer:     scorer,
		detector:   detector,
		logger:     logger.Named("analysis"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze looks up a recipe by name and analyzes it. Unknown names return
// ErrCodeCocktailNotFound. When a cache is configured, a cached report is
// returned as-is; cache errors degrade to a fresh computation.
func (s *Service) Analyze(ctx context.Context, name string, target flavor.Target) (*Report, error) {
	c, ok := s.source.Find(name)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeCocktailNotFound, "cocktail %q not found", name)
	}

	key := cacheKey(c.Name, target)
	if s.cache != nil {
		if report, ok := s.cachedReport(ctx, key); ok {
			if s.onAnalyzed != nil {
				s.onAnalyzed(0, true)
			}
			return report, nil
		}
	}

	start := time.Now()
	report := s.AnalyzeCocktail(c, target)
	elapsed := time.Since(start)

	if s.cache != nil {
		s.storeReport(ctx, key, report)
	}
	if s.onAnalyzed != nil {
		s.onAnalyzed(elapsed, false)
	}

	s.logger.Debug("cocktail analyzed",
		logging.String("cocktail", c.Name),
		logging.Float64("balance", report.OverallBalance),
		logging.Int("imbalances", len(report.Imbalances)),
		logging.Duration("elapsed", elapsed),
	)
	return report, nil
}

// AnalyzeCocktail analyzes a recipe directly, bypassing lookup and cache.
// The simulator calls this on modified copies that have no stored name.
func (s *Service) AnalyzeCocktail(c *cocktail.Cocktail, target flavor.Target) *Report {
	profiles := make([]*ingredient.Profile, len(c.Ingredients))
	volumes := make([]float64, len(c.Ingredients))
	breakdown := make([]IngredientBreakdown, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		p := s.profiler.Profile(ing.Name)
		profiles[i] = p
		volumes[i] = ing.VolumeML
		breakdown[i] = IngredientBreakdown{Name: ing.Name, VolumeML: ing.VolumeML, Profile: p}
	}

	aggregated := s.aggregator.Aggregate(profiles, volumes)

	return &Report{
		ID:             uuid.NewString(),
		Cocktail:       c.Name,
		Category:       c.Category,
		TotalVolumeML:  c.TotalVolumeML(),
		Ingredients:    breakdown,
		Profile:        aggregated,
		OverallBalance: s.scorer.OverallBalance(aggregated.TasteScores),
		Complexity:     s.scorer.Complexity(aggregated.UniqueKeywords, aggregated.UniqueGroups),
		Imbalances:     s.detector.Detect(aggregated.TasteScores, target),
		GeneratedAt:    time.Now().UTC(),
	}
}

// Names lists the known cocktails.
func (s *Service) Names() []string {
	return s.source.Names()
}

func cacheKey(name string, target flavor.Target) string {
	return "analysis:" + name + ":" + string(target)
}

func (s *Service) cachedReport(ctx context.Context, key string) (*Report, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("analysis cache read failed", logging.Err(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		s.logger.Warn("analysis cache entry corrupt", logging.Err(err))
		return nil, false
	}
	return &report, true
}

func (s *Service) storeReport(ctx context.Context, key string, report *Report) {
	raw, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("analysis report not serializable", logging.Err(err))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("analysis cache write failed", logging.Err(err))
	}
}
