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
)

type CategoriesHandler struct {
	baseline *dataset.Baseline
}

func NewCategoriesHandler(baseline *dataset.Baseline) *CategoriesHandler {
	return &CategoriesHandler{baseline: baseline}
}

// ListCategories handles GET /categories
func (h *CategoriesHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	candidates := h.baseline.Candidates()

	summaries := []models.CategorySummary{}
	for _, c := range h.baseline.Categories() {
		summaries = append(summaries, models.CategorySummary{
			Name:       c.Name,
			Groups:     c.Baseline.Names(),
			Candidates: candidates,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetCategory handles GET /categories/{name}
// Returns the baseline distribution for one category
func (h *CategoriesHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := h.baseline.Category(name)
	if errors.Is(err, dataset.ErrUnknownCategory) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up category", "category", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load category")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoryResponse{
		Category:   category,
		Candidates: h.baseline.Candidates(),
	})
}
