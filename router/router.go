// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/handlers"
	"github.com/danielhkuo/electorate/middleware"
)

func NewRouter(baseline *dataset.Baseline, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	categoriesHandler := handlers.NewCategoriesHandler(baseline)
	simulateHandler := handlers.NewSimulateHandler(baseline)

	limiter := middleware.NewLimiter(cfg.RateLimit)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Baseline data (read-only)
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoriesHandler.ListCategories))
	mux.HandleFunc("GET /categories/{name}", middleware.WithLogging(categoriesHandler.GetCategory))

	// Pipeline runs
	mux.HandleFunc("POST /simulate", middleware.WithLogging(middleware.WithRateLimit(limiter, simulateHandler.Simulate)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("electorate API v1"))
	})

	return mux
}
