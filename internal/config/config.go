package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Edgar  EdgarConfig  `yaml:"edgar" mapstructure:"edgar"`
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// EdgarConfig configures access to the SEC EDGAR endpoints.
type EdgarConfig struct {
	// UserAgent identifies the caller on every request, as the SEC fair
	// access policy requires. It is the only value with no usable default.
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	DataURL     string  `yaml:"data_url" mapstructure:"data_url"`
	FullTextURL string  `yaml:"full_text_url" mapstructure:"full_text_url"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// SearchConfig configures the search pipeline.
type SearchConfig struct {
	MaxCandidates int `yaml:"max_candidates" mapstructure:"max_candidates"`
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
	v.SetEnvPrefix("EDGARSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("edgar.user_agent", "")
	v.SetDefault("edgar.base_url", "https://www.sec.gov")
	v.SetDefault("edgar.data_url", "https://data.sec.gov")
	v.SetDefault("edgar.full_text_url", "https://efts.sec.gov/LATEST/search-index")
	v.SetDefault("edgar.rate_limit", 10.0)
	v.SetDefault("edgar.timeout_secs", 30)
	v.SetDefault("search.max_candidates", 5)

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

// Validate checks the values no request can go out without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Edgar.UserAgent) == "" {
		return eris.New("config: edgar.user_agent is required (set EDGARSCOUT_EDGAR_USER_AGENT or edgar.user_agent in config.yaml)")
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
