package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "COCKTAILIQ"

// newViper builds a pre-configured viper instance: YAML file type,
// COCKTAILIQ_ env prefix, automatic env binding, and a key replacer so
// nested keys like "analysis.sensitivity" resolve to
// COCKTAILIQ_ANALYSIS_SENSITIVITY.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindKeys(v)
	return v
}

// bindKeys registers every known key so environment overrides survive
// Unmarshal even when the key is absent from the YAML file.
func bindKeys(v *viper.Viper) {
	keys := []string{
		"server.port", "server.mode", "server.read_timeout",
		"server.write_timeout", "server.shutdown_timeout",
		"data.molecule_file", "data.recipe_file", "data.watch_files", "data.source",
		"database.host", "database.port", "database.user", "database.password",
		"database.db_name", "database.ssl_mode", "database.max_open_conns",
		"database.max_idle_conns", "database.conn_max_lifetime",
		"database.conn_max_idle_time", "database.migration_path",
		"redis.enabled", "redis.addr", "redis.password", "redis.db",
		"redis.key_prefix", "redis.ttl",
		"analysis.sensitivity", "analysis.low_score_floor",
		"analysis.top_keywords", "analysis.top_groups", "analysis.cache_ttl",
		"recommend.excellence_threshold", "recommend.base_portion",
		"recommend.min_amount_ml", "recommend.max_amount_ml",
		"recommend.candidate_cap", "recommend.selector_top_n",
		"metrics.enabled", "metrics.namespace",
		"logging.level", "logging.format",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// Load reads the YAML file at configPath, merges COCKTAILIQ_* environment
// overrides, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from COCKTAILIQ_* environment
// variables and defaults, the path for containerized deployments.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Watch monitors configPath and invokes onChange with each successfully
// reparsed config. Changes that fail to parse or validate are skipped so
// the application never sees a broken config.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad panics on any load error, for use in main().
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
