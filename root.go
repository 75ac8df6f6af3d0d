// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/countdown/cliparse"
	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/db"
	"github.com/danielhkuo/countdown/logging"
)

var errDatabaseRequired = errors.New("database URL required (use -d or DATABASE_URL env)")

func newRootCommand() *cobra.Command {
	var cfg cliparse.Config

	rootCmd := &cobra.Command{
		Use:           "countdown",
		Short:         "Live countdowns to configured date/times",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.LoadDotEnv(); err != nil {
				return err
			}
			resolved, err := cliparse.Resolve(cfg)
			if err != nil {
				return err
			}
			cfg = resolved
			return logging.Setup(cfg.LogLevel, cfg.LogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}

	cliparse.BindFlags(rootCmd.PersistentFlags(), &cfg)

	rootCmd.AddCommand(newServeCommand(&cfg))
	rootCmd.AddCommand(newListCommand(&cfg))
	rootCmd.AddCommand(newTargetsCommand(&cfg))

	return rootCmd
}

// loadTargets returns flag, env and file targets followed by stored targets
// when a database is configured. The database is read once and closed.
func loadTargets(ctx context.Context, cfg cliparse.Config) ([]countdown.Target, error) {
	targets := cfg.Targets()
	if cfg.DatabaseURL == "" {
		return targets, nil
	}

	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open target store: %w", err)
	}
	defer store.Close()

	stored, err := store.LoadTargets(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("stored targets loaded", "count", len(stored), "database_type", cfg.DatabaseType)

	return countdown.AppendTargets(targets, stored...), nil
}

// openStore opens the configured target store or fails when none is set
func openStore(ctx context.Context, cfg cliparse.Config) (*db.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, errDatabaseRequired
	}
	return db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
}
