// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores configured countdown targets in SQLite or PostgreSQL.

The database is an optional configuration source. It holds which targets
exist and their titles; computed countdowns are never written back.

# Opening

	store, err := db.Open(ctx, "sqlite", "file:countdown.db")
	store, err := db.Open(ctx, "postgres", "postgres://...")

Open pings the connection and creates the schema. Safe to call multiple
times - uses IF NOT EXISTS.

# Tables

  - countdown_target: id, position, title, target (raw string), created_at

Targets are read ordered by position, then id. InsertTarget appends after
the current highest position.

# Placeholders

Queries are written with ? placeholders and rewritten to $n for postgres.
*/
package db
