// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/countdown/cliparse"
	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/middleware"
	"github.com/danielhkuo/countdown/router"
	"github.com/danielhkuo/countdown/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the countdown board and API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *cfg)
		},
	}
}

func runServer(ctx context.Context, cfg cliparse.Config) error {
	targets, err := loadTargets(ctx, cfg)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		slog.Warn("no countdown targets configured; /api/countdown will return 500")
	} else {
		slog.Info("countdown targets ready", "count", len(targets))
	}

	assets, err := web.Assets(cfg.PublicDir)
	if err != nil {
		return err
	}

	calc := countdown.NewCalculator(time.Now, time.Local)
	mux := router.NewRouter(targets, calc, assets)

	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening", "port", cfg.Port, "url", "http://localhost:"+strconv.Itoa(cfg.Port))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}
