// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the variety study API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Participant flow (public):

	POST /session   - Assign or echo a session (X-Session-Token optional)
	GET  /flavors   - Fixed flavor set and prompt variants
	POST /responses - Submit three choices (X-Session-Token required)

Results (public):

	GET /results - Live condition x variety breakdown

Admin (requires X-Admin-Token and confirm parameter):

	DELETE /admin/responses?confirm=delete-everything

# Handler Initialization

The router creates one study.SessionStore and injects it into the handlers
that share session state:

	sessions := study.NewSessionStore()
	sessionHandler := handlers.NewSessionHandler(sessions)
	responseHandler := handlers.NewResponseHandler(db, sessions)
	resultsHandler := handlers.NewResultsHandler(db)
	adminHandler := handlers.NewAdminHandler(db, cfg)
*/
package router
