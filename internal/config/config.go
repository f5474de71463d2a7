// Package config loads the collector configuration: defaults, then an
// optional YAML file, then APP_-prefixed environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the collector's full configuration.
type Config struct {
	Listener struct {
		// Host is the UDP listen address for flow datagrams.
		Host string `yaml:"host"`
		// ChannelSize bounds the decoded-record hand-off to the consumer.
		ChannelSize int `yaml:"channel_size"`
		// TemplateTTLSeconds ages out idle exporter template state;
		// 0 keeps templates for the process lifetime.
		TemplateTTLSeconds int `yaml:"template_ttl_seconds"`
	} `yaml:"listener"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Metrics struct {
		// Host enables the Prometheus exposition endpoint when non-empty.
		Host string `yaml:"host"`
	} `yaml:"metrics"`
	API struct {
		// Host enables the JSON API when non-empty.
		Host string `yaml:"host"`
	} `yaml:"api"`
	Store struct {
		MaxFlows int `yaml:"max_flows"`
	} `yaml:"store"`
	Resolver struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"resolver"`
}

// TemplateTTL returns the exporter state TTL as a duration.
func (c *Config) TemplateTTL() time.Duration {
	return time.Duration(c.Listener.TemplateTTLSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Listener.Host = "0.0.0.0:9999"
	cfg.Listener.ChannelSize = 1000
	cfg.Log.Level = "info"
	cfg.Store.MaxFlows = 100000
	return cfg
}

// Load builds the configuration from defaults, the optional file at path
// (empty = no file) and APP_ environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if cfg.Listener.ChannelSize <= 0 {
		cfg.Listener.ChannelSize = 1000
	}
	if cfg.Store.MaxFlows <= 0 {
		cfg.Store.MaxFlows = 100000
	}

	return cfg, nil
}

// applyEnv overrides single settings from the environment, e.g.
// APP_LISTENER_HOST=0.0.0.0:2055 or APP_LOG_LEVEL=debug.
func (c *Config) applyEnv() error {
	if v := os.Getenv("APP_LISTENER_HOST"); v != "" {
		c.Listener.Host = v
	}
	if v := os.Getenv("APP_LISTENER_CHANNEL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid APP_LISTENER_CHANNEL_SIZE: %w", err)
		}
		c.Listener.ChannelSize = n
	}
	if v := os.Getenv("APP_LISTENER_TEMPLATE_TTL_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid APP_LISTENER_TEMPLATE_TTL_SECONDS: %w", err)
		}
		c.Listener.TemplateTTLSeconds = n
	}
	if v := os.Getenv("APP_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("APP_METRICS_HOST"); v != "" {
		c.Metrics.Host = v
	}
	if v := os.Getenv("APP_API_HOST"); v != "" {
		c.API.Host = v
	}
	return nil
}
