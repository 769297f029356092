package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-effects/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-effects/internal/domain/date"
)

// Config holds all configuration for the simulation
type Config struct {
	Redis      RedisConfig
	Simulation SimulationConfig

	EffectsFile string     `env:"EFFECTS_FILE" envDefault:"effects.yaml"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: conditions are kept in memory when empty
}

// SimulationConfig controls the simulated timeline
type SimulationConfig struct {
	Step        date.Duration          `env:"SIM_STEP" envDefault:"2 hours"`
	Steps       int                    `env:"SIM_STEPS" envDefault:"4"`
	StackPolicy conditions.StackPolicy `env:"STACK_POLICY" envDefault:"reject"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Simulation.Steps < 0 {
		return nil, fmt.Errorf("SIM_STEPS must not be negative, got %d", cfg.Simulation.Steps)
	}
	if cfg.EffectsFile == "" {
		return nil, fmt.Errorf("EFFECTS_FILE is required")
	}
	if cfg.Redis.URL != "" {
		if _, err := cfg.Redis.Options(); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

// Enabled reports whether a Redis URL was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// Options parses the Redis URL into client options
func (c RedisConfig) Options() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return opts, nil
}
