// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web embeds the countdown board front-end (index.html, styles.css,
// script.js). Assets("") returns the embedded copy; a directory path
// overrides it for local styling changes without a rebuild.
package web
