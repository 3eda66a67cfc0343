// Package config defines all configuration structures for the cocktailiq
// service. No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DataConfig locates the molecule and recipe files.
type DataConfig struct {
	MoleculeFile string `mapstructure:"molecule_file"`
	RecipeFile   string `mapstructure:"recipe_file"`
	WatchFiles   bool   `mapstructure:"watch_files"`
	// Source selects where molecules come from: "file" or "postgres".
	Source string `mapstructure:"source"`
}

// DatabaseConfig holds the optional PostgreSQL molecule store settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds the optional redis analysis-cache settings.
type RedisConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// AnalysisConfig holds the scoring and detection knobs.
type AnalysisConfig struct {
	// Sensitivity scales the standard-deviation detection band; the
	// deployed variants are 1.0 and 0.7.
	Sensitivity   float64       `mapstructure:"sensitivity"`
	LowScoreFloor float64       `mapstructure:"low_score_floor"`
	TopKeywords   int           `mapstructure:"top_keywords"`
	TopGroups     int           `mapstructure:"top_groups"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// RecommendConfig holds the recommendation knobs.
type RecommendConfig struct {
	ExcellenceThreshold float64 `mapstructure:"excellence_threshold"`
	BasePortion         float64 `mapstructure:"base_portion"`
	MinAmountML         float64 `mapstructure:"min_amount_ml"`
	MaxAmountML         float64 `mapstructure:"max_amount_ml"`
	CandidateCap        int     `mapstructure:"candidate_cap"`
	SelectorTopN        int     `mapstructure:"selector_top_n"`
	// ContrastOverrides remaps which dimension counters which; keys and
	// values are dimension names.
	ContrastOverrides map[string]string `mapstructure:"contrast_overrides"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Data      DataConfig        `mapstructure:"data"`
	Database  DatabaseConfig    `mapstructure:"database"`
	Redis     RedisConfig       `mapstructure:"redis"`
	Analysis  AnalysisConfig    `mapstructure:"analysis"`
	Recommend RecommendConfig   `mapstructure:"recommend"`
	Metrics   MetricsConfig     `mapstructure:"metrics"`
	Logging   logging.LogConfig `mapstructure:"logging"`
}

// Validate checks cross-field consistency. Defaults must be applied first.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release, or test", c.Server.Mode)
	}

	switch c.Data.Source {
	case "file", "postgres":
	default:
		return fmt.Errorf("data.source %q must be file or postgres", c.Data.Source)
	}
	if c.Data.Source == "file" && c.Data.MoleculeFile == "" {
		return fmt.Errorf("data.molecule_file is required with data.source=file")
	}

	if c.Analysis.Sensitivity <= 0 {
		return fmt.Errorf("analysis.sensitivity must be positive, got %g", c.Analysis.Sensitivity)
	}
	if c.Analysis.LowScoreFloor < 0 || c.Analysis.LowScoreFloor > 1 {
		return fmt.Errorf("analysis.low_score_floor %g out of [0,1]", c.Analysis.LowScoreFloor)
	}

	if c.Recommend.ExcellenceThreshold <= 0 || c.Recommend.ExcellenceThreshold > 1 {
		return fmt.Errorf("recommend.excellence_threshold %g out of (0,1]", c.Recommend.ExcellenceThreshold)
	}
	if c.Recommend.BasePortion <= 0 || c.Recommend.BasePortion >= 1 {
		return fmt.Errorf("recommend.base_portion %g out of (0,1)", c.Recommend.BasePortion)
	}
	if c.Recommend.MinAmountML > c.Recommend.MaxAmountML {
		return fmt.Errorf("recommend.min_amount_ml %g exceeds max_amount_ml %g",
			c.Recommend.MinAmountML, c.Recommend.MaxAmountML)
	}
	return nil
}
