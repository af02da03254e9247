package config

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env                string        `mapstructure:"ENV"`
	Port               string        `mapstructure:"PORT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	BearerToken        string        `mapstructure:"BEARER_TOKEN"`
	RedisAddress       string        `mapstructure:"REDIS_URL"`
	ReportCacheTTL     time.Duration `mapstructure:"REPORT_CACHE_TTL"`
	ReportCacheTimeout time.Duration `mapstructure:"REPORT_CACHE_TIMEOUT"`
	RateLimitRPS       float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int           `mapstructure:"RATE_LIMIT_BURST"`
	RateLimitIdleTTL   time.Duration `mapstructure:"RATE_LIMIT_IDLE_TTL"`
	CORSOrigins        []string      `mapstructure:"-"`
}

// LoadConfig reads configuration from the environment, with defaults for
// everything except the bearer token.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8930")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REPORT_CACHE_TTL", "5m")
	v.SetDefault("REPORT_CACHE_TIMEOUT", "2s")
	v.SetDefault("RATE_LIMIT_RPS", 15)
	v.SetDefault("RATE_LIMIT_BURST", 30)
	v.SetDefault("RATE_LIMIT_IDLE_TTL", "3m")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Unmarshal only sees env vars that were bound explicitly
	for _, key := range []string{"ENV", "PORT", "LOG_LEVEL", "BEARER_TOKEN", "REDIS_URL",
		"REPORT_CACHE_TTL", "REPORT_CACHE_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"RATE_LIMIT_IDLE_TTL", "CORS_ORIGINS"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", key)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	return cfg, nil
}

// Validate checks the settings the HTTP server depends on.
func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Env, validation.Required, validation.In("development", "production", "test")),
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error", "fatal")),
		validation.Field(&c.BearerToken, validation.Required.Error("BEARER_TOKEN is required")),
		validation.Field(&c.ReportCacheTTL, validation.Min(time.Second)),
		validation.Field(&c.ReportCacheTimeout, validation.Min(10*time.Millisecond)),
		validation.Field(&c.RateLimitRPS, validation.Required, validation.Min(0.1)),
		validation.Field(&c.RateLimitBurst, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitIdleTTL, validation.Min(time.Second)),
	)
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

func (c *AppConfig) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *AppConfig) CacheEnabled() bool {
	return c.RedisAddress != ""
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
