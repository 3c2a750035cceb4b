// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Baseline store connection string (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatasetFile: YAML or JSON baseline to use instead of the bundled table
  - RateLimit: Simulate requests per second per client IP (default: 50, 0 disables)
  - EnvFile: dotenv file to load (default: .env)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-dataset  Baseline dataset file
	-rate     Simulate requests per second per client
	-env      Env file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DATASET_FILE  → -dataset
	RATE_LIMIT    → -rate

CLI flags take precedence over environment variables, and variables
already set take precedence over the env file. A missing env file is
ignored.

# Baseline Source

With no DATABASE_URL the server uses the dataset file, or the bundled table
when no file is given. With a DATABASE_URL the store is seeded from that
source on first start and read from then on.
*/
package cliparse
