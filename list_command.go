// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/countdown/cliparse"
	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/logging"
	"github.com/danielhkuo/countdown/models"
)

func newListCommand(cfg *cliparse.Config) *cobra.Command {
	var (
		jsonOutput bool
		at         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the current countdowns once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := countdown.NewCalculator(time.Now, time.Local)
			if at != "" {
				now, err := countdown.ParseTarget(at, time.Local)
				if err != nil {
					return fmt.Errorf("--at %q: %w", at, err)
				}
				calc = countdown.NewCalculator(func() time.Time { return now }, time.Local)
			}

			targets, err := loadTargets(cmd.Context(), *cfg)
			if err != nil {
				return err
			}

			countdowns, err := calc.Compute(targets)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), models.CountdownsResponse{Countdowns: countdowns})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCountdowns(countdowns, logging.IsTerminal(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the API response body instead of a table")
	cmd.Flags().StringVar(&at, "at", "", "Compute as of this instant instead of now")

	return cmd
}

func renderCountdowns(countdowns []models.Countdown, tty bool) string {
	columns := []column{
		{title: "Title"},
		{title: "Target"},
		{title: "Status"},
		{title: "D", right: true},
		{title: "H", right: true},
		{title: "M", right: true},
		{title: "S", right: true},
		{title: "Total Hours", right: true},
		{title: "Relative"},
	}

	rows := make([][]string, 0, len(countdowns))
	for _, c := range countdowns {
		if c.Invalid() {
			rows = append(rows, []string{c.Title, c.TargetDateTime, "invalid", "", "", "", "", "", c.Error})
			continue
		}

		status := "pending"
		if c.Complete() {
			status = "complete"
		}

		var remaining models.TimeRemaining
		if c.TimeRemaining != nil {
			remaining = *c.TimeRemaining
		}
		var totalHours int64
		if c.TotalHours != nil {
			totalHours = *c.TotalHours
		}

		rows = append(rows, []string{
			c.Title,
			c.TargetDateTime,
			status,
			strconv.FormatInt(remaining.Days, 10),
			strconv.FormatInt(remaining.Hours, 10),
			strconv.FormatInt(remaining.Minutes, 10),
			strconv.FormatInt(remaining.Seconds, 10),
			humanize.Comma(totalHours),
			c.Relative,
		})
	}

	return renderTable(columns, rows, tty)
}
