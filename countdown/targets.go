// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package countdown

import (
	"strconv"
	"strings"
)

// Target is a titled, not yet parsed target instant
type Target struct {
	Title string `json:"title" toml:"title" yaml:"title"`
	Raw   string `json:"target" toml:"target" yaml:"target"`
}

// DefaultTitle returns the title used when none is configured for index i (0-based)
func DefaultTitle(i int) string {
	return "Countdown " + strconv.Itoa(i+1)
}

// PairTargets pairs comma-separated instants with titles by position.
// Blank instants are dropped before pairing; a missing or blank title falls
// back to DefaultTitle.
func PairTargets(instants, titles []string) []Target {
	cleaned := make([]string, 0, len(instants))
	for _, s := range instants {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	targets := make([]Target, len(cleaned))
	for i, raw := range cleaned {
		title := ""
		if i < len(titles) {
			title = strings.TrimSpace(titles[i])
		}
		if title == "" {
			title = DefaultTitle(i)
		}
		targets[i] = Target{Title: title, Raw: raw}
	}
	return targets
}

// AppendTargets appends extra targets to dst, skipping blank instants and
// defaulting blank titles by their position in the combined list.
func AppendTargets(dst []Target, extra ...Target) []Target {
	for _, t := range extra {
		raw := strings.TrimSpace(t.Raw)
		if raw == "" {
			continue
		}
		title := strings.TrimSpace(t.Title)
		if title == "" {
			title = DefaultTitle(len(dst))
		}
		dst = append(dst, Target{Title: title, Raw: raw})
	}
	return dst
}

// SplitList splits a comma-separated list, trimming each entry
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
