// Package config centralises configuration parsing for the activities
// service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	LogLevel  string
	LogFormat string

	StaticDir string

	EventsEnabled bool
	KafkaBrokers  []string
	EventsTopic   string
}

// Load reads an optional config.yaml plus environment overrides into Config,
// applying sensible defaults for local dev. A .env file is honoured when
// present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("http_address", ":8080")
	v.SetDefault("read_timeout", 5*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("idle_timeout", 60*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("static_dir", "web/static")
	v.SetDefault("events_enabled", false)
	v.SetDefault("kafka_brokers", "kafka:9092")
	v.SetDefault("events_topic", "activities.roster-changed")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		HTTPAddress:   v.GetString("http_address"),
		ReadTimeout:   v.GetDuration("read_timeout"),
		WriteTimeout:  v.GetDuration("write_timeout"),
		IdleTimeout:   v.GetDuration("idle_timeout"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
		StaticDir:     v.GetString("static_dir"),
		EventsEnabled: v.GetBool("events_enabled"),
		KafkaBrokers:  splitAndTrim(v.GetString("kafka_brokers")),
		EventsTopic:   v.GetString("events_topic"),
	}

	if cfg.EventsEnabled && len(cfg.KafkaBrokers) == 0 {
		return Config{}, errors.New("events enabled but no kafka brokers configured")
	}
	return cfg, nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
