// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Recommender RecommenderConfig `mapstructure:"recommender"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// RecommenderConfig points the client at the similarity-scoring peer.
type RecommenderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds, 0 = no deadline
}

// HTTPTimeout converts the configured millisecond timeout.
func (r RecommenderConfig) HTTPTimeout() time.Duration {
	return time.Duration(r.Timeout) * time.Millisecond
}

// Endpoint returns the full recommend URL.
func (r RecommenderConfig) Endpoint() string {
	return strings.TrimRight(r.BaseURL, "/") + "/recommend"
}

// AuthConfig carries the session token. Token presence is the only
// authentication signal the workflow needs.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func validateConfig(cfg *Config) error {
	if cfg.Recommender.BaseURL == "" {
		return fmt.Errorf("recommender.base_url must not be empty")
	}
	if cfg.Recommender.Timeout < 0 {
		return fmt.Errorf("recommender.timeout must not be negative")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Address == "" {
		return fmt.Errorf("metrics.address required when metrics are enabled")
	}
	return nil
}
