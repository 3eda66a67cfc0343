// Package bootstrap assembles the full pipeline from configuration: data
// stores, domain services, caches, metrics, and the optional dataset
// watcher. Both entry points (CLI and API server) build an App and differ
// only in which interface layer they attach.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/flavorlab/cocktailiq/internal/application/analysis"
	"github.com/flavorlab/cocktailiq/internal/application/recommend"
	"github.com/flavorlab/cocktailiq/internal/config"
	"github.com/flavorlab/cocktailiq/internal/domain/balance"
	"github.com/flavorlab/cocktailiq/internal/domain/cocktail"
	"github.com/flavorlab/cocktailiq/internal/domain/ingredient"
	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/domain/plausibility"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/cache"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/database/postgres"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/dataset"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/prometheus"
	"github.com/flavorlab/cocktailiq/pkg/types/flavor"
)

// App holds the wired pipeline.
type App struct {
	Config      *config.Config
	Logger      logging.Logger
	Recipes     *dataset.RecipeBook
	Profiler    *ingredient.Profiler
	Analyzer    *analysis.Service
	Simulator   *recommend.Simulator
	Recommender *recommend.Service
	Metrics     *prometheus.Metrics

	watcher *dataset.Watcher
	closers []func() error
}

// New wires the application from config. A nil logger builds one from the
// logging section.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		var err error
		logger, err = logging.NewLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: logger: %w", err)
		}
	}

	app := &App{Config: cfg, Logger: logger}

	var metrics *prometheus.Metrics
	if cfg.Metrics.Enabled {
		metrics = prometheus.NewMetrics(cfg.Metrics.Namespace)
		app.Metrics = metrics
	}

	index, err := app.buildIndex(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	profilerOpts := []ingredient.ProfilerOption{}
	if metrics != nil {
		profilerOpts = append(profilerOpts,
			ingredient.WithCacheMetrics(metrics.ProfileCacheHit, metrics.ProfileCacheMiss))
	}
	app.Profiler = ingredient.NewProfiler(index, logger, profilerOpts...)

	recipes, err := dataset.LoadRecipeBook(cfg.Data.RecipeFile, logger)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: recipes: %w", err)
	}
	app.Recipes = recipes

	analysisOpts := []analysis.Option{}
	if c, err := app.buildCache(ctx, cfg); err != nil {
		return nil, err
	} else if c != nil {
		analysisOpts = append(analysisOpts, analysis.WithCache(c, cfg.Analysis.CacheTTL))
	}
	if metrics != nil {
		analysisOpts = append(analysisOpts, analysis.WithObserver(metrics.ObserveAnalysis))
	}

	app.Analyzer = analysis.NewService(
		recipes,
		app.Profiler,
		cocktail.NewAggregator(cfg.Analysis.TopKeywords, cfg.Analysis.TopGroups),
		balance.NewScorer(),
		balance.NewDetector(cfg.Analysis.Sensitivity, cfg.Analysis.LowScoreFloor),
		logger,
		analysisOpts...,
	)

	simOpts := []recommend.SimulatorOption{}
	if metrics != nil {
		simOpts = append(simOpts, recommend.WithSimulationObserver(metrics.ObserveSimulation))
	}
	app.Simulator = recommend.NewSimulator(app.Analyzer, logger, simOpts...)

	tables, err := candidateTables(cfg.Recommend.ContrastOverrides)
	if err != nil {
		return nil, err
	}

	selector := recommend.NewSelector(app.Simulator, cfg.Recommend.SelectorTopN, logger)
	picker := recommend.NewPlausibilityReranker(
		selector,
		plausibility.NewTable(recipes.IngredientFrequencies()),
	)

	recOpts := []recommend.ServiceOption{
		recommend.WithExcellenceThreshold(cfg.Recommend.ExcellenceThreshold),
	}
	if metrics != nil {
		recOpts = append(recOpts, recommend.WithRecommendObserver(metrics.ObserveRecommendation))
	}

	app.Recommender = recommend.NewService(
		recipes,
		app.Analyzer,
		recommend.NewGenerator(tables, app.Profiler, cfg.Recommend.CandidateCap),
		recommend.NewAmountCalculator(
			cfg.Recommend.BasePortion,
			cfg.Recommend.MinAmountML,
			cfg.Recommend.MaxAmountML,
		),
		picker,
		logger,
		recOpts...,
	)

	return app, nil
}

// buildIndex loads molecules from the configured source and indexes them.
// With the file source and watch_files enabled, a watcher is prepared; the
// caller starts it with RunWatcher.
func (a *App) buildIndex(ctx context.Context, cfg *config.Config, logger logging.Logger) (*molecule.Index, error) {
	if cfg.Data.Source == "postgres" {
		conn, err := postgres.NewConnection(postgresConfig(cfg.Database), logger)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database: %w", err)
		}
		a.closers = append(a.closers, conn.Close)

		if cfg.Database.MigrationPath != "" {
			if err := postgres.RunMigrations(postgres.BuildDSN(postgresConfig(cfg.Database)), cfg.Database.MigrationPath); err != nil {
				return nil, fmt.Errorf("bootstrap: migrations: %w", err)
			}
		}

		mols, err := postgres.NewStore(conn, logger).LoadMolecules(ctx)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: molecules: %w", err)
		}
		return molecule.NewIndex(mols, logger), nil
	}

	store := dataset.NewFileStore(cfg.Data.MoleculeFile, logger)
	mols, err := store.LoadMolecules(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: molecules: %w", err)
	}

	if cfg.Data.WatchFiles {
		a.watcher = dataset.NewWatcher(store, func(idx *molecule.Index) {
			a.Profiler.SwapIndex(idx)
			if a.Metrics != nil {
				a.Metrics.DatasetReloaded()
			}
		}, logger)
	}
	return molecule.NewIndex(mols, logger), nil
}

// buildCache returns the analysis cache: redis when enabled, otherwise an
// in-process cache when a TTL is configured, otherwise nil.
func (a *App) buildCache(ctx context.Context, cfg *config.Config) (analysis.Cache, error) {
	if cfg.Redis.Enabled {
		r, err := cache.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: redis: %w", err)
		}
		a.closers = append(a.closers, r.Close)
		return r, nil
	}
	if cfg.Analysis.CacheTTL > 0 {
		return cache.NewMemory(), nil
	}
	return nil, nil
}

// RunWatcher blocks watching the molecule file for changes until ctx is
// cancelled. It is a no-op returning nil when no watcher is configured.
func (a *App) RunWatcher(ctx context.Context) error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Run(ctx)
}

// Close releases connections in reverse acquisition order.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// candidateTables applies configured contrast overrides to the default
// candidate tables.
func candidateTables(overrides map[string]string) (recommend.Tables, error) {
	tables := recommend.DefaultTables()
	for from, to := range overrides {
		fromDim, err := flavor.ParseDimension(from)
		if err != nil {
			return recommend.Tables{}, fmt.Errorf("bootstrap: contrast override: %w", err)
		}
		toDim, err := flavor.ParseDimension(to)
		if err != nil {
			return recommend.Tables{}, fmt.Errorf("bootstrap: contrast override: %w", err)
		}
		tables.Contrast[fromDim] = toDim
	}
	return tables, nil
}

// postgresConfig maps the application database section onto the driver
// package's config.
func postgresConfig(cfg config.DatabaseConfig) postgres.Config {
	return postgres.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Database:        cfg.DBName,
		Username:        cfg.User,
		Password:        cfg.Password,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	}
}
