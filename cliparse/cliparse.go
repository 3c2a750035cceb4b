// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DatasetFile  string
	RateLimit    float64
	EnvFile      string
}

// DefaultRateLimit is the simulate request budget per second, per client IP
const DefaultRateLimit = 50

// ParseFlags parses flags, loads the env file and fills unset values from
// the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("electorate", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Baseline database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Baseline and limits
	fs.StringVar(&cfg.DatasetFile, "dataset", "", "Baseline dataset file (.yaml, .yml or .json)")
	fs.Float64Var(&cfg.RateLimit, "rate", -1, "Simulate requests per second per client (0 disables)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Env file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the env file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatasetFile == "" {
		cfg.DatasetFile = os.Getenv("DATASET_FILE")
	}

	if cfg.RateLimit < 0 {
		if rateStr := os.Getenv("RATE_LIMIT"); rateStr != "" {
			rate, err := strconv.ParseFloat(rateStr, 64)
			if err != nil || rate < 0 {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = rate
		} else {
			cfg.RateLimit = DefaultRateLimit
		}
	}

	return cfg, nil
}
