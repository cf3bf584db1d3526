// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the variety study API server.

The variety study backend runs a randomized behavioral survey: each visitor
is assigned to one of two conditions (sequential or simultaneous yogurt
choice), submits three flavor picks, and the service records the submission
in PostgreSQL and serves a live condition x variety breakdown.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 8714 -d "postgres://..." -admin-token "..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ADMIN_TOKEN (--admin-token): Secret gating the reset endpoint

Optional settings:

  - PORT (-p): Server port (default: 8714)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - study: core pipeline (classify, validate, assign, persist, aggregate)
  - handlers: HTTP request handlers (session, responses, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
