package config

import (
	"os"
	"strconv"

	"streaksim/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Sim    SimConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SimConfig holds simulation execution settings
type SimConfig struct {
	// Workers is the number of goroutines generating sequences. 1 keeps
	// the reference behavior of a single shared random stream; higher
	// values switch runs to seed-partitioned per-sequence streams.
	Workers int
}

// Load builds configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Sim: SimConfig{
			Workers: 1,
		},
	}

	if workersStr := os.Getenv("SIM_WORKERS"); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return nil, errors.ConfigInvalid("SIM_WORKERS must be an integer")
		}
		if workers < 1 {
			return nil, errors.ConfigInvalid("SIM_WORKERS must be >= 1")
		}
		cfg.Sim.Workers = workers
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
