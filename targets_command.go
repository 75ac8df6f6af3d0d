// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/countdown/cliparse"
	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/logging"
)

func newTargetsCommand(cfg *cliparse.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage countdown targets kept in the database",
	}

	cmd.AddCommand(newTargetsAddCommand(cfg))
	cmd.AddCommand(newTargetsListCommand(cfg))
	cmd.AddCommand(newTargetsRemoveCommand(cfg))

	return cmd
}

func newTargetsAddCommand(cfg *cliparse.Config) *cobra.Command {
	var title, at string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new countdown target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at = strings.TrimSpace(at)
			if _, err := countdown.ParseTarget(at, time.Local); err != nil {
				return fmt.Errorf("--at %q: %w", at, err)
			}

			store, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.InsertTarget(cmd.Context(), strings.TrimSpace(title), at)
			if err != nil {
				return err
			}

			slog.Info("target stored", "id", id, "title", title, "target", at)
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Countdown title (defaults to \"Countdown N\")")
	cmd.Flags().StringVar(&at, "at", "", "Target date/time (ISO 8601)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newTargetsListCommand(cfg *cliparse.Config) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored countdown targets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			stored, err := store.ListTargets(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), stored)
			}

			rows := make([][]string, 0, len(stored))
			for _, t := range stored {
				rows = append(rows, []string{
					strconv.FormatInt(t.ID, 10),
					strconv.FormatInt(t.Position, 10),
					t.Title,
					t.Target,
				})
			}

			out := cmd.OutOrStdout()
			columns := []column{{title: "ID", right: true}, {title: "Position", right: true}, {title: "Title"}, {title: "Target"}}
			fmt.Fprintln(out, renderTable(columns, rows, logging.IsTerminal(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")

	return cmd
}

func newTargetsRemoveCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a stored countdown target",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid target id %q", args[0])
			}

			store, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTarget(cmd.Context(), id); err != nil {
				return err
			}

			slog.Info("target removed", "id", id)
			return nil
		},
	}
}
