// Package config loads and validates the application configuration from
// file and environment via viper.
package config

import (
	"fmt"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Stream  StreamConfig  `mapstructure:"stream"`
	Queue   QueueConfig   `mapstructure:"queue"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// EngineConfig overrides the analysis policy constants. Zero values keep
// the release defaults.
type EngineConfig struct {
	SmoothingAlpha      float64 `mapstructure:"smoothing_alpha"`
	SlopeThreshold      float64 `mapstructure:"slope_threshold"`
	VolatilityThreshold float64 `mapstructure:"volatility_threshold"`
	ZScoreMultiplier    float64 `mapstructure:"zscore_multiplier"`
	AnomalySensitivity  float64 `mapstructure:"anomaly_sensitivity"`
	ForecastDailyDecay  float64 `mapstructure:"forecast_daily_decay"`
}

// Policy merges the overrides onto the default engine policy
func (e EngineConfig) Policy() analytics.Policy {
	p := analytics.DefaultPolicy()
	if e.SmoothingAlpha > 0 {
		p.SmoothingAlpha = e.SmoothingAlpha
	}
	if e.SlopeThreshold > 0 {
		p.SlopeThreshold = e.SlopeThreshold
	}
	if e.VolatilityThreshold > 0 {
		p.VolatilityThreshold = e.VolatilityThreshold
	}
	if e.ZScoreMultiplier > 0 {
		p.ZScoreMultiplier = e.ZScoreMultiplier
	}
	if e.AnomalySensitivity > 0 {
		p.AnomalySensitivity = e.AnomalySensitivity
	}
	if e.ForecastDailyDecay > 0 {
		p.ForecastDailyDecay = e.ForecastDailyDecay
	}
	return p
}

// StreamConfig represents the streaming worker configuration
type StreamConfig struct {
	ObservationsSubject string `mapstructure:"observations_subject"` // Subject batches arrive on
	ReportsSubject      string `mapstructure:"reports_subject"`      // Subject reports go out on
	Workers             int    `mapstructure:"workers"`              // Concurrent analysis workers
	Compress            bool   `mapstructure:"compress"`             // Snappy-compress outgoing reports
}

// QueueConfig represents message queue configuration
type QueueConfig struct {
	Type     string `mapstructure:"type"`     // Queue type: nats (default), redis, kafka, memory
	URL      string `mapstructure:"url"`      // Queue server URL (e.g., nats://localhost:4222)
	Username string `mapstructure:"username"` // Optional authentication
	Password string `mapstructure:"password"` // Optional authentication

	// Redis-specific options
	RedisDB       int    `mapstructure:"redis_db"`       // Redis database number (default: 0)
	RedisStream   string `mapstructure:"redis_stream"`   // Redis stream prefix (default: "vitalyze")
	RedisGroup    string `mapstructure:"redis_group"`    // Redis consumer group (default: "vitalyze-group")
	RedisConsumer string `mapstructure:"redis_consumer"` // Redis consumer name (default: hostname)

	// Kafka-specific options
	KafkaBrokers []string `mapstructure:"kafka_brokers"`  // Kafka broker addresses
	KafkaGroupID string   `mapstructure:"kafka_group_id"` // Kafka consumer group ID
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	if err := c.Stream.Validate(); err != nil {
		return fmt.Errorf("stream config: %w", err)
	}
	return nil
}

// Validate validates server configuration
func (s ServerConfig) Validate() error {
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", s.HTTPPort)
	}
	return nil
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch l.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid level: %s", l.Level)
	}
	switch l.Format {
	case "", "json", "console", "pretty":
	default:
		return fmt.Errorf("invalid format: %s", l.Format)
	}
	return nil
}

// Validate validates engine overrides
func (e EngineConfig) Validate() error {
	if e.SmoothingAlpha < 0 || e.SmoothingAlpha > 1 {
		return fmt.Errorf("smoothing_alpha must be in (0,1], got %f", e.SmoothingAlpha)
	}
	if e.ForecastDailyDecay < 0 || e.ForecastDailyDecay > 1 {
		return fmt.Errorf("forecast_daily_decay must be in (0,1], got %f", e.ForecastDailyDecay)
	}
	if e.ZScoreMultiplier < 0 {
		return fmt.Errorf("zscore_multiplier must be positive, got %f", e.ZScoreMultiplier)
	}
	if e.AnomalySensitivity < 0 {
		return fmt.Errorf("anomaly_sensitivity must be positive, got %f", e.AnomalySensitivity)
	}
	return nil
}

// Validate validates stream configuration
func (s StreamConfig) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	return nil
}
