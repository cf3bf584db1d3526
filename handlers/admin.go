// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/hmac"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/variety-study/cliparse"
	"github.com/danielhkuo/variety-study/middleware"
	"github.com/danielhkuo/variety-study/study"
)

// ResetConfirmValue is the literal the confirm query parameter must carry.
// The double gate (secret + explicit confirmation) lives here at the
// boundary; study.ResetAll itself is a bare destructive primitive.
const ResetConfirmValue = "delete-everything"

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// ResetResponses handles DELETE /admin/responses?confirm=delete-everything
// Unconditionally deletes every stored response. No soft-delete, no undo.
func (h *AdminHandler) ResetResponses(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	if !hmac.Equal([]byte(token), []byte(h.cfg.AdminToken)) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	if r.URL.Query().Get("confirm") != ResetConfirmValue {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"destructive operation requires confirm="+ResetConfirmValue)
		return
	}

	if err := study.ResetAll(r.Context(), h.db); err != nil {
		slog.Error("failed to reset responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("all responses deleted")
	w.WriteHeader(http.StatusNoContent)
}
