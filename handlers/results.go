// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/variety-study/middleware"
	"github.com/danielhkuo/variety-study/models"
	"github.com/danielhkuo/variety-study/study"
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: db}
}

// GetResults handles GET /results
// Returns the live condition x variety breakdown. The view is recomputed on
// every call and may lag in-flight writes by a moment.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	view, err := study.Aggregate(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to aggregate responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		AggregateView: view,
		LabelFloorPct: models.PercentLabelFloor,
	})
}
