// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/middleware"
	"github.com/danielhkuo/countdown/models"
)

type CountdownHandler struct {
	targets []countdown.Target
	calc    *countdown.Calculator
}

func NewCountdownHandler(targets []countdown.Target, calc *countdown.Calculator) *CountdownHandler {
	return &CountdownHandler{
		targets: append([]countdown.Target(nil), targets...),
		calc:    calc,
	}
}

// GetCountdowns handles GET /api/countdown
// Returns 500 (never 4xx) when no targets are configured
func (h *CountdownHandler) GetCountdowns(w http.ResponseWriter, r *http.Request) {
	records, err := h.calc.Compute(h.targets)
	if errors.Is(err, countdown.ErrNoTargets) {
		slog.Error("countdown targets not configured")
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgNotConfigured)
		return
	}
	if err != nil {
		slog.Error("failed to compute countdowns", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgServer)
		return
	}

	slog.Debug("countdowns computed", "count", len(records))

	w.Header().Set("Cache-Control", "no-store")
	middleware.JSONResponse(w, http.StatusOK, models.CountdownsResponse{
		Countdowns: records,
	})
}
