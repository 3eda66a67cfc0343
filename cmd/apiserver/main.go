// Command apiserver runs the HTTP API: analysis, recommendations, and
// simulation over the configured recipe and molecule datasets.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/flavorlab/cocktailiq/internal/bootstrap"
	"github.com/flavorlab/cocktailiq/internal/config"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	httpiface "github.com/flavorlab/cocktailiq/internal/interfaces/http"
)

func main() {
	configPath := flag.String("config", "", "config file path (default: environment only)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "apiserver: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer app.Close()

	logger := app.Logger

	var metricsHandler http.Handler
	if app.Metrics != nil {
		metricsHandler = app.Metrics.Handler()
	}

	handlers := httpiface.NewHandlers(app.Recipes, app.Analyzer, app.Recommender, app.Simulator, logger)
	router := httpiface.NewRouter(handlers, metricsHandler, logger, cfg.Server.Mode)
	server := httpiface.NewServer(cfg.Server, router, logger)

	go func() {
		if err := app.RunWatcher(ctx); err != nil && ctx.Err() == nil {
			logger.Error("dataset watcher stopped", logging.Err(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	return server.Shutdown(context.Background())
}
