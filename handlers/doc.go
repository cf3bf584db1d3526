// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the variety study API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - SessionHandler: condition assignment and study metadata
  - ResponseHandler: choice submission (validate, classify, persist)
  - ResultsHandler: live aggregated breakdown
  - AdminHandler: gated destructive reset

Handlers over the database accept *sql.DB; the session handlers share one
*study.SessionStore created by the router:

	sessions := study.NewSessionStore()
	responseHandler := handlers.NewResponseHandler(db, sessions)

# Participant Flow

	POST /session    → Assign (returns session_token, condition)
	GET  /flavors    → Flavors (choice set + prompt variants)
	POST /responses  → Submit (X-Session-Token header required)
	GET  /results    → GetResults (live, public)

A session submits at most once: after the first confirmed persist, further
submissions return 409. A failed persist leaves the session open for retry.

# Admin Operations

	DELETE /admin/responses?confirm=delete-everything

Requires the X-Admin-Token header. Both the token and the explicit confirm
parameter are checked before the bulk delete runs.

# Status Codes

	201 session created / response recorded
	200 existing session echoed / results
	400 incomplete or malformed choices (message names the empty slots)
	401 missing or unknown session token, bad admin token
	409 session already submitted
	503 persistence retries exhausted (generic retry-later message)
*/
package handlers
