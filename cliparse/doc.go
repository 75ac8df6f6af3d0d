// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags, environment variables and
config files.

# Configuration

ParseFlags returns a resolved Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands built with cobra bind the same flags and resolve afterwards:

	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// ...
	cfg, err = cliparse.Resolve(cfg)

# Precedence

	CLI flag → environment → .env file → config file → default

LoadDotEnv loads .env files without overriding variables that are already
set, so it only fills gaps in the real environment.

# CLI Flags and Environment Variables

	-p, --port           PORT                                    (default 3000)
	    --targets        TARGET_DATETIMES, then TARGET_DATETIME
	    --titles         COUNTDOWN_TITLES, then COUNTDOWN_TITLE
	    --public-dir     PUBLIC_DIR
	-d, --database-url   DATABASE_URL
	-t, --database-type  DATABASE_TYPE                           (default sqlite)
	-c, --config         COUNTDOWN_CONFIG
	    --log-level      LOG_LEVEL                               (default info)
	    --log-format     LOG_FORMAT                              (default auto)

Targets and titles are comma-separated and paired by position. A missing
title at index i becomes "Countdown i+1".

# Config File

TOML:

	port = 3000

	[[countdown]]
	title = "Launch"
	target = "2030-01-01T00:00:00Z"

YAML:

	port: 3000
	countdowns:
	  - title: Launch
	    target: "2030-01-01T00:00:00Z"

File targets are appended after flag/env targets.

# Validation

Resolve rejects an out-of-range port, an unknown database type and an
unknown log format. No targets at all is not a startup error: the countdown
endpoint reports it as a 500.
*/
package cliparse
