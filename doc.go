// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the countdown command: a small server that shows live
countdowns to one or more configured date/times.

# Starting the Server

Targets come from environment variables, CLI flags, a config file or an
optional database:

	TARGET_DATETIMES=2025-01-01T00:00:00Z,2025-06-01 COUNTDOWN_TITLES="New Year,Summer" go run .

Or with flags:

	go run . serve -p 3000 --targets 2025-01-01T00:00:00Z --titles "New Year"

A .env file in the working directory is loaded first; values already present
in the environment win.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3000)
  - TARGET_DATETIMES (--targets): Comma-separated target date/times; TARGET_DATETIME is the single-value fallback
  - COUNTDOWN_TITLES (--titles): Comma-separated titles paired by position; COUNTDOWN_TITLE is the fallback
  - COUNTDOWN_CONFIG (-c): TOML or YAML file with port, public_dir and a countdown list
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Stored targets (sqlite or postgres)
  - PUBLIC_DIR (--public-dir): Serve the front-end from disk instead of the embedded copy
  - LOG_LEVEL, LOG_FORMAT: slog level and format (auto, text, json)

Missing targets are not a startup error. GET /api/countdown reports it.

# Commands

  - serve: HTTP server (the default when no command is given)
  - list: Print the current countdowns once as a table or JSON
  - targets add|ls|rm: Manage targets kept in the database

# Architecture

  - countdown: Pure countdown calculator, date parsing, target pairing
  - handlers: HTTP request handlers (countdowns, static assets)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, recovery, JSON helpers
  - models: Response types
  - db: Stored target schema and queries
  - cliparse: Configuration parsing
  - logging: slog setup
  - web: Embedded front-end

See package documentation for each component.
*/
package main
