// Package config loads the run configuration (flags, environment, and an
// optional config file) and initializes the global zap logger, following
// a viper Load / zap InitLogger split.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full run configuration for one invocation.
type Config struct {
	Prospects  string     `mapstructure:"prospects"`   // path to the prospect CSV
	Filings    string     `mapstructure:"filings"`     // directory of filing .txt files
	Out        string     `mapstructure:"out"`         // output directory
	MaxFiles   int        `mapstructure:"max_files"`   // 0 = unlimited
	Recursive  bool       `mapstructure:"recursive"`   // walk filings dir recursively
	TeamName   string     `mapstructure:"team_name"`   // attached to every Client Record row
	Checkpoint Checkpoint `mapstructure:"checkpoint"`
	Postgres   Postgres   `mapstructure:"postgres"`
	Log        LogConfig  `mapstructure:"log"`
}

// Checkpoint configures resumable-run behavior.
type Checkpoint struct {
	Path     string `mapstructure:"path"`     // SQLite file path
	Interval int    `mapstructure:"interval"` // save every N filings
}

// Postgres configures the optional Postgres sink, including the retry and
// circuit-breaker knobs guarding its writes. Zero values fall back to the
// resilience package defaults.
type Postgres struct {
	DatabaseURL string `mapstructure:"database_url"` // empty disables the sink

	RetryMaxAttempts        int `mapstructure:"retry_max_attempts"`
	RetryInitialBackoffMs   int `mapstructure:"retry_initial_backoff_ms"`
	RetryMaxBackoffMs       int `mapstructure:"retry_max_backoff_ms"`
	CircuitFailureThreshold int `mapstructure:"circuit_failure_threshold"`
	CircuitResetTimeoutSecs int `mapstructure:"circuit_reset_timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the fields required for a run.
func (c *Config) Validate() error {
	var errs []string
	if c.Prospects == "" {
		errs = append(errs, "prospects path is required")
	}
	if c.Filings == "" {
		errs = append(errs, "filings directory is required")
	}
	if c.Out == "" {
		errs = append(errs, "output directory is required")
	}
	if c.MaxFiles < 0 {
		errs = append(errs, "max-files must be >= 0")
	}
	if len(errs) > 0 {
		return eris.New("config: validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from an optional config file and the
// environment, with CLI flags applied by the caller afterward (cmd/root.go
// binds flags directly onto the returned Config).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("prospect-matcher")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PROSPECT_MATCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("max_files", 0)
	v.SetDefault("recursive", false)
	v.SetDefault("team_name", "")
	v.SetDefault("checkpoint.interval", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

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
