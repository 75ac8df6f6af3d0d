// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the countdown board.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(targets, calc, assets)

# Endpoints

Health:

	GET /health

Countdowns:

	GET /api/countdown - computed countdown records

Front-end:

	GET /              - index.html
	GET /{asset}       - script.js, styles.css, ...

# Handler Initialization

	countdownHandler := handlers.NewCountdownHandler(targets, calc)
	staticHandler := handlers.NewStaticHandler(assets)

Targets are resolved once at startup and are read-only afterwards.
*/
package router
