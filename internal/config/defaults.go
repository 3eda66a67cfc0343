package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultMoleculeFile = "data/flavordb.json"
	DefaultRecipeFile   = "data/cocktails.json"
	DefaultDataSource   = "file"

	DefaultDBHost        = "localhost"
	DefaultDBPort        = 5432
	DefaultDBName        = "cocktailiq"
	DefaultMigrationPath = "file://internal/infrastructure/database/postgres/migrations"

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisTTL  = 10 * time.Minute

	DefaultSensitivity   = 1.0
	DefaultLowScoreFloor = 0.3
	DefaultTopKeywords   = 20
	DefaultTopGroups     = 10
	DefaultCacheTTL      = 5 * time.Minute

	DefaultExcellenceThreshold = 0.98
	DefaultBasePortion         = 0.12
	DefaultMinAmountML         = 5.0
	DefaultMaxAmountML         = 30.0
	DefaultCandidateCap        = 5
	DefaultSelectorTopN        = 5

	DefaultMetricsNamespace = "cocktailiq"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service
// default. Explicitly configured values always win.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Data.MoleculeFile == "" {
		cfg.Data.MoleculeFile = DefaultMoleculeFile
	}
	if cfg.Data.RecipeFile == "" {
		cfg.Data.RecipeFile = DefaultRecipeFile
	}
	if cfg.Data.Source == "" {
		cfg.Data.Source = DefaultDataSource
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = DefaultMigrationPath
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = DefaultRedisTTL
	}

	if cfg.Analysis.Sensitivity == 0 {
		cfg.Analysis.Sensitivity = DefaultSensitivity
	}
	if cfg.Analysis.LowScoreFloor == 0 {
		cfg.Analysis.LowScoreFloor = DefaultLowScoreFloor
	}
	if cfg.Analysis.TopKeywords == 0 {
		cfg.Analysis.TopKeywords = DefaultTopKeywords
	}
	if cfg.Analysis.TopGroups == 0 {
		cfg.Analysis.TopGroups = DefaultTopGroups
	}
	if cfg.Analysis.CacheTTL == 0 {
		cfg.Analysis.CacheTTL = DefaultCacheTTL
	}

	if cfg.Recommend.ExcellenceThreshold == 0 {
		cfg.Recommend.ExcellenceThreshold = DefaultExcellenceThreshold
	}
	if cfg.Recommend.BasePortion == 0 {
		cfg.Recommend.BasePortion = DefaultBasePortion
	}
	if cfg.Recommend.MinAmountML == 0 {
		cfg.Recommend.MinAmountML = DefaultMinAmountML
	}
	if cfg.Recommend.MaxAmountML == 0 {
		cfg.Recommend.MaxAmountML = DefaultMaxAmountML
	}
	if cfg.Recommend.CandidateCap == 0 {
		cfg.Recommend.CandidateCap = DefaultCandidateCap
	}
	if cfg.Recommend.SelectorTopN == 0 {
		cfg.Recommend.SelectorTopN = DefaultSelectorTopN
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
