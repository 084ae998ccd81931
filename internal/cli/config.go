package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr  string      `mapstructure:"addr"`
	Store string      `mapstructure:"store"` // "memory" or "redis"
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the Redis session backend.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// DefaultServeConfig returns the configuration used when no file is
// given.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{
		Addr:  ":8080",
		Store: "memory",
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "lex:session:",
		},
	}
}

// LoadServeConfig reads a YAML config file and overlays it on the
// defaults. An empty path returns the defaults unchanged.
func LoadServeConfig(path string) (*ServeConfig, error) {
	cfg := DefaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     cfg,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
