// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON payloads served by the countdown API.

# Response Types

  - CountdownsResponse: countdowns
  - ErrorResponse: error

# Countdown Records

A Countdown is one of three shapes:

Invalid (target could not be parsed):

	{"id": "...", "title": "Launch", "targetDateTime": "soon", "error": "Invalid date format. ..."}

Pending:

	{"id": "...", "title": "Launch", "targetDateTime": "2099-01-01T00:00:00.000Z",
	 "totalHours": 12, "timeRemaining": {"days": 0, "hours": 11, "minutes": 59, "seconds": 59},
	 "isComplete": false, "relative": "11 hours from now"}

Completed: same as pending with isComplete true and every timeRemaining field 0.

TotalHours and IsComplete are pointers so that zero values are still encoded
for valid records and omitted for invalid ones.

# Error Messages

	ErrMsgInvalidDate   - per-record parse failure
	ErrMsgNotConfigured - no targets configured (500)
	ErrMsgServer        - unexpected failure (500)
*/
package models
