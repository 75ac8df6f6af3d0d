// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the countdown board.

# Handler Types

Each handler is a struct created by a constructor with its dependencies:

  - CountdownHandler: the countdown JSON endpoint
  - StaticHandler: the front-end page and assets

	countdownHandler := handlers.NewCountdownHandler(targets, calc)
	staticHandler := handlers.NewStaticHandler(assets)

# Countdown Endpoint

	GET /api/countdown → GetCountdowns

Computes every configured target against the calculator's clock:

	200 {"countdowns": [...]}
	500 {"error": "TARGET_DATETIMES (or TARGET_DATETIME) not configured in environment variables"}
	500 {"error": "Server error calculating countdowns"}

Invalid target dates do not fail the request; they come back as records
with an error field. Responses carry Cache-Control: no-store since the
client polls every second.

Handlers hold only read-only state, so concurrent requests need no locking.

# Static Assets

	GET /            → index.html
	GET /script.js   → client polling loop
	GET /styles.css

Served from the embedded web package or a --public-dir override.
*/
package handlers
