// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/variety-study/middleware"
	"github.com/danielhkuo/variety-study/models"
	"github.com/danielhkuo/variety-study/study"
)

type SessionHandler struct {
	sessions *study.SessionStore
}

func NewSessionHandler(sessions *study.SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Assign handles POST /session
// Idempotent: a known X-Session-Token returns the existing assignment; an
// absent or stale token gets a fresh session with a randomized condition.
func (h *SessionHandler) Assign(w http.ResponseWriter, r *http.Request) {
	token, sess, created := h.sessions.Assign(r.Header.Get("X-Session-Token"))

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		slog.Info("session assigned",
			"participant_id", sess.ParticipantID,
			"condition", sess.Condition,
		)
	}

	middleware.JSONResponse(w, status, models.AssignSessionResponse{
		SessionToken:  token,
		ParticipantID: sess.ParticipantID,
		Condition:     sess.Condition,
		Submitted:     sess.Submitted,
	})
}

// Flavors handles GET /flavors
// Returns the fixed choice set and the per-condition prompt variants so the
// frontend never hardcodes them.
func (h *SessionHandler) Flavors(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.FlavorsResponse{
		Flavors: models.Flavors,
		Prompts: models.ConditionPrompts,
	})
}
