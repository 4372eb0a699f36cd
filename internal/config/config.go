package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Clean  CleanConfig  `yaml:"clean" mapstructure:"clean"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run-history backend. Driver is "sqlite",
// "postgres", or "none" to disable run recording.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// CleanConfig configures the cleaning pipeline.
type CleanConfig struct {
	// CorrectionsPath points at a YAML file mapping incorrect names
	// to corrected ones. Empty disables corrections.
	CorrectionsPath string `yaml:"corrections_path" mapstructure:"corrections_path"`

	// IQRMultiplier widens or narrows the outlier fences. 1.5 is the
	// conventional value.
	IQRMultiplier float64 `yaml:"iqr_multiplier" mapstructure:"iqr_multiplier"`

	// KeepUniform skips outlier filtering when the interquartile range
	// is zero, instead of collapsing the fences to a single point.
	KeepUniform bool `yaml:"keep_uniform" mapstructure:"keep_uniform"`
}

// BatchConfig configures concurrent multi-file cleaning.
type BatchConfig struct {
	MaxConcurrentFiles int `yaml:"max_concurrent_files" mapstructure:"max_concurrent_files"`
}

// ServerConfig configures the HTTP cleaning endpoint.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CLEANSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "cleanse.db")
	v.SetDefault("clean.iqr_multiplier", 1.5)
	v.SetDefault("clean.keep_uniform", false)
	v.SetDefault("batch.max_concurrent_files", 4)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for a command mode: "clean",
// "batch", "runs", or "serve". Shared settings are checked for every
// mode; mode-specific ones only where they matter.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch c.Store.Driver {
	case "sqlite", "postgres", "none":
	default:
		problems = append(problems, fmt.Sprintf("store.driver must be sqlite, postgres, or none (got %q)", c.Store.Driver))
	}
	if c.Store.Driver != "none" && c.Store.DatabaseURL == "" {
		problems = append(problems, "store.database_url is required")
	}
	if c.Clean.IQRMultiplier <= 0 {
		problems = append(problems, "clean.iqr_multiplier must be > 0")
	}

	switch mode {
	case "clean":
	case "runs":
		if c.Store.Driver == "none" {
			problems = append(problems, "runs requires store.driver sqlite or postgres")
		}
	case "batch":
		if c.Batch.MaxConcurrentFiles < 1 || c.Batch.MaxConcurrentFiles > 32 {
			problems = append(problems, "batch.max_concurrent_files must be between 1 and 32")
		}
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
