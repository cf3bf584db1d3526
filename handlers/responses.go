// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/variety-study/middleware"
	"github.com/danielhkuo/variety-study/models"
	"github.com/danielhkuo/variety-study/study"
)

type ResponseHandler struct {
	db       *sql.DB
	sessions *study.SessionStore
	writer   *study.Writer
}

func NewResponseHandler(db *sql.DB, sessions *study.SessionStore) *ResponseHandler {
	return &ResponseHandler{
		db:       db,
		sessions: sessions,
		writer:   study.NewWriter(db),
	}
}

// Submit handles POST /responses
// Validates the three choices, classifies them, persists the response with
// retry, and only then flips the session into its terminal submitted state.
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return
	}

	sess, ok := h.sessions.Get(token)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown session, request a new one")
		return
	}

	if sess.Submitted {
		middleware.ErrorResponse(w, http.StatusConflict, "Your choices were already recorded")
		return
	}

	// Parse request
	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validation errors never reach the store
	choices, err := study.ValidateChoices(req.Choices)
	if err != nil {
		var incomplete *study.IncompleteError
		var unknown *study.UnknownFlavorError
		switch {
		case errors.As(err, &incomplete):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Incomplete submission: "+incomplete.Error())
		case errors.As(err, &unknown):
			middleware.ErrorResponse(w, http.StatusBadRequest, unknown.Error())
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "choices must contain exactly 3 items")
		}
		return
	}

	variety, err := study.Classify(choices)
	if err != nil {
		// Unreachable after validation; defensive assertion
		slog.Error("classification failed on validated choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record response")
		return
	}

	response := models.Response{
		CreatedAt:     time.Now().UTC(),
		ParticipantID: sess.ParticipantID,
		Condition:     sess.Condition,
		Choices:       choices,
		Variety:       variety,
	}

	// A started write runs to completion or retry exhaustion even if the
	// client goes away; the retry budget is the only timeout.
	err = h.writer.Persist(context.WithoutCancel(r.Context()), &response)
	if err != nil {
		slog.Error("failed to persist response",
			"error", err,
			"participant_id", sess.ParticipantID,
		)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable,
			"Could not record your choices right now, please try again")
		return
	}

	h.sessions.MarkSubmitted(token)

	slog.Info("response recorded",
		"participant_id", sess.ParticipantID,
		"condition", sess.Condition,
		"variety", variety,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		Variety: variety,
		Message: "Thank you, your choices were recorded",
	})
}
