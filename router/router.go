// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/variety-study/cliparse"
	"github.com/danielhkuo/variety-study/handlers"
	"github.com/danielhkuo/variety-study/middleware"
	"github.com/danielhkuo/variety-study/study"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// One session store shared by the assignment and submission handlers
	sessions := study.NewSessionStore()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessions)
	responseHandler := handlers.NewResponseHandler(db, sessions)
	resultsHandler := handlers.NewResultsHandler(db)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Participant flow (public)
	mux.HandleFunc("POST /session", middleware.WithLogging(sessionHandler.Assign))
	mux.HandleFunc("GET /flavors", middleware.WithLogging(sessionHandler.Flavors))
	mux.HandleFunc("POST /responses", middleware.WithLogging(responseHandler.Submit))

	// Live results (public, classroom projector)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))

	// Admin operations
	mux.HandleFunc("DELETE /admin/responses", middleware.WithLogging(adminHandler.ResetResponses))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("variety-study API v1"))
	})

	return mux
}
