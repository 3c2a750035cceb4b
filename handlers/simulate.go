// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/electorate/dataset"
	"github.com/danielhkuo/electorate/middleware"
	"github.com/danielhkuo/electorate/models"
	"github.com/danielhkuo/electorate/simulator"
)

type SimulateHandler struct {
	baseline *dataset.Baseline
}

func NewSimulateHandler(baseline *dataset.Baseline) *SimulateHandler {
	return &SimulateHandler{baseline: baseline}
}

// Simulate handles POST /simulate
// Every request carries the full scenario; nothing is kept between calls
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulateRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if req.Category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category is required")
		return
	}

	category, err := h.baseline.Category(req.Category)
	if errors.Is(err, dataset.ErrUnknownCategory) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up category", "category", req.Category, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load category")
		return
	}

	out, err := simulator.Run(category, req.TurnoutShifts, req.SwingShifts)

	var invalid *simulator.InvalidShiftError
	var degenerate *simulator.DegenerateDistributionError
	switch {
	case errors.As(err, &invalid):
		middleware.ErrorResponse(w, http.StatusBadRequest, invalid.Error())
		return
	case errors.As(err, &degenerate):
		slog.Warn("degenerate simulation rejected", "category", req.Category, "stage", degenerate.Stage, "group", degenerate.Group)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, degenerate.Error())
		return
	case err != nil:
		slog.Error("simulation failed", "category", req.Category, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Simulation failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, simulator.Report(category, h.baseline.Candidates(), out))
}
