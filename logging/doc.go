// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging configures the process-wide slog logger.

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

Formats: "text", "json", or "auto" (text when stderr is a terminal, JSON
otherwise, e.g. under a container runtime). Levels: debug, info, warn, error.
*/
package logging
