package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/db"
	"github.com/danielhkuo/electorate/middleware"
	"github.com/danielhkuo/electorate/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the baseline source
	baseline := dataset.Default()
	if cfg.DatasetFile != "" {
		baseline, err = dataset.LoadFile(cfg.DatasetFile)
		if err != nil {
			slog.Error("dataset load failed", "file", cfg.DatasetFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded dataset file", "file", cfg.DatasetFile)
	}

	// The store, when configured, is seeded once and then authoritative
	if cfg.DatabaseURL != "" {
		var seeded bool
		baseline, seeded, err = loadStoredBaseline(cfg, baseline)
		if err != nil {
			slog.Error("baseline store failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		if cfg.DatasetFile != "" && !seeded {
			slog.Warn("store already holds a baseline; dataset file ignored",
				"file", cfg.DatasetFile, "type", cfg.DatabaseType)
		}
		slog.Info("Baseline store ready", "type", cfg.DatabaseType, "seeded", seeded)
	}
	slog.Info("Baseline ready", "categories", baseline.Names())

	// Create router
	mux := router.NewRouter(baseline, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "rate_limit", cfg.RateLimit)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// loadStoredBaseline reads the baseline from the store, seeding it from
// fallback on first use. The connection is not needed afterwards.
func loadStoredBaseline(cfg cliparse.Config, fallback *dataset.Baseline) (*dataset.Baseline, bool, error) {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, false, err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return nil, false, err
	}

	return db.EnsureBaseline(conn, fallback)
}
