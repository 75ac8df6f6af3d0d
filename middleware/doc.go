// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms) at info level.

# Panic Recovery

	mux.HandleFunc("GET /api/countdown", middleware.WithLogging(middleware.WithRecovery(h.GetCountdowns)))

A panic is logged with its stack and answered with a 500
{"error": "Server error calculating countdowns"}.

# CORS Middleware

Enable cross-origin reads for embedding the board elsewhere:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET and OPTIONS with the Content-Type header. Preflight requests are
answered with 204 without reaching the handler.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "message")

ErrorResponse writes {"error": message}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
