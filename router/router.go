// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"io/fs"
	"net/http"

	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/handlers"
	"github.com/danielhkuo/countdown/middleware"
)

func NewRouter(targets []countdown.Target, calc *countdown.Calculator, assets fs.FS) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	countdownHandler := handlers.NewCountdownHandler(targets, calc)
	staticHandler := handlers.NewStaticHandler(assets)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Countdown API
	mux.HandleFunc("GET /api/countdown", middleware.WithLogging(middleware.WithRecovery(countdownHandler.GetCountdowns)))

	// Front-end page and assets
	mux.HandleFunc("GET /", middleware.WithLogging(staticHandler.ServeAssets))

	return mux
}
