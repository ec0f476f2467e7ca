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
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Matcher  MatcherConfig  `yaml:"matcher" mapstructure:"matcher"`
	Strategy StrategyConfig `yaml:"strategy" mapstructure:"strategy"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Retry   RetryConfig   `yaml:"retry" mapstructure:"retry"`
}

// StoreConfig configures the assessment history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RatePerSec     float64  `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst          int      `yaml:"burst" mapstructure:"burst"`
}

// MatcherConfig holds the suitability scoring constants.
type MatcherConfig struct {
	MinScore       float64 `yaml:"min_score" mapstructure:"min_score" json:"min_score"`
	MaxResults     int     `yaml:"max_results" mapstructure:"max_results" json:"max_results"`
	RiskDiffWeight float64 `yaml:"risk_diff_weight" mapstructure:"risk_diff_weight" json:"risk_diff_weight"`

	// Tolerance mismatch penalties. A portfolio is penalized when its risk
	// level is above (conservative) or below (aggressive) the threshold.
	ConservativeMaxRisk   int     `yaml:"conservative_max_risk" mapstructure:"conservative_max_risk" json:"conservative_max_risk"`
	ConservativePenalty   float64 `yaml:"conservative_penalty" mapstructure:"conservative_penalty" json:"conservative_penalty"`
	AggressiveMinRisk     int     `yaml:"aggressive_min_risk" mapstructure:"aggressive_min_risk" json:"aggressive_min_risk"`
	AggressivePenalty     float64 `yaml:"aggressive_penalty" mapstructure:"aggressive_penalty" json:"aggressive_penalty"`
	VeryAggressiveMinRisk int     `yaml:"very_aggressive_min_risk" mapstructure:"very_aggressive_min_risk" json:"very_aggressive_min_risk"`
	VeryAggressivePenalty float64 `yaml:"very_aggressive_penalty" mapstructure:"very_aggressive_penalty" json:"very_aggressive_penalty"`
}

// DefaultMatcherConfig returns the standard suitability constants. Load
// uses it for the matcher defaults.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		MinScore:       60,
		MaxResults:     3,
		RiskDiffWeight: 10,

		ConservativeMaxRisk:   5,
		ConservativePenalty:   20,
		AggressiveMinRisk:     5,
		AggressivePenalty:     20,
		VeryAggressiveMinRisk: 7,
		VeryAggressivePenalty: 30,
	}
}

// StrategyConfig holds the trading strategy recommendation settings.
type StrategyConfig struct {
	MinScore   float64 `yaml:"min_score" mapstructure:"min_score" json:"min_score"`
	MaxResults int     `yaml:"max_results" mapstructure:"max_results" json:"max_results"`
	// CashReserve is the fraction held back from strategies.
	CashReserve float64 `yaml:"cash_reserve" mapstructure:"cash_reserve" json:"cash_reserve"`
	// RiskFreeRate is an annual percentage, used for the Sharpe ratio.
	RiskFreeRate float64 `yaml:"risk_free_rate" mapstructure:"risk_free_rate" json:"risk_free_rate"`
}

// DefaultStrategyConfig returns the standard strategy settings.
func DefaultStrategyConfig() StrategyConfig {
	return StrategyConfig{MinScore: 60, MaxResults: 5, CashReserve: 0.20, RiskFreeRate: 2.0}
}

// ExportConfig configures file exports.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// RetryConfig configures retries of transient store failures.
type RetryConfig struct {
	MaxAttempts      int `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs int `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	MaxBackoffMs     int `yaml:"max_backoff_ms" mapstructure:"max_backoff_ms"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.database_url", "advisor.db")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_per_sec", 10)
	v.SetDefault("server.burst", 20)
	m := DefaultMatcherConfig()
	v.SetDefault("matcher.min_score", m.MinScore)
	v.SetDefault("matcher.max_results", m.MaxResults)
	v.SetDefault("matcher.risk_diff_weight", m.RiskDiffWeight)
	v.SetDefault("matcher.conservative_max_risk", m.ConservativeMaxRisk)
	v.SetDefault("matcher.conservative_penalty", m.ConservativePenalty)
	v.SetDefault("matcher.aggressive_min_risk", m.AggressiveMinRisk)
	v.SetDefault("matcher.aggressive_penalty", m.AggressivePenalty)
	v.SetDefault("matcher.very_aggressive_min_risk", m.VeryAggressiveMinRisk)
	v.SetDefault("matcher.very_aggressive_penalty", m.VeryAggressivePenalty)
	st := DefaultStrategyConfig()
	v.SetDefault("strategy.min_score", st.MinScore)
	v.SetDefault("strategy.max_results", st.MaxResults)
	v.SetDefault("strategy.cash_reserve", st.CashReserve)
	v.SetDefault("strategy.risk_free_rate", st.RiskFreeRate)
	v.SetDefault("export.dir", ".")
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.initial_backoff_ms", 200)
	v.SetDefault("retry.max_backoff_ms", 2000)

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

// Validate checks the settings a command needs. Mode is "cli" for one-shot
// commands or "serve" for the HTTP API.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, "store.database_url is required")
		}
		if c.Store.MinConns < 0 || (c.Store.MaxConns > 0 && c.Store.MinConns > c.Store.MaxConns) {
			errs = append(errs, "store.min_conns must be between 0 and store.max_conns")
		}
	case DriverNone:
	default:
		errs = append(errs, fmt.Sprintf("store.driver %q must be one of sqlite, postgres, none", c.Store.Driver))
	}

	m := c.Matcher
	if m.MinScore < 0 || m.MinScore > 100 {
		errs = append(errs, "matcher.min_score must be between 0 and 100")
	}
	if m.MaxResults < 1 {
		errs = append(errs, "matcher.max_results must be >= 1")
	}
	if m.RiskDiffWeight < 0 {
		errs = append(errs, "matcher.risk_diff_weight must be >= 0")
	}

	st := c.Strategy
	if st.MinScore < 0 || st.MinScore > 100 {
		errs = append(errs, "strategy.min_score must be between 0 and 100")
	}
	if st.MaxResults < 1 {
		errs = append(errs, "strategy.max_results must be >= 1")
	}
	if st.CashReserve < 0 || st.CashReserve >= 1 {
		errs = append(errs, "strategy.cash_reserve must be >= 0 and < 1")
	}

	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, "retry.max_attempts must be >= 1")
	}

	switch mode {
	case "cli":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RatePerSec <= 0 {
			errs = append(errs, "server.rate_per_sec must be > 0")
		}
		if c.Server.Burst < 1 {
			errs = append(errs, "server.burst must be >= 1")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown mode %q", mode))
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
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
