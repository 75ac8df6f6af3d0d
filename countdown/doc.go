// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package countdown computes countdown records for a set of target instants.

# Computing Countdowns

Compute is a pure function of the current instant and the target list:

	records, err := countdown.Compute(now, []countdown.Target{
		{Title: "Launch", Raw: "2099-01-01T00:00:00Z"},
	})

It returns ErrNoTargets for an empty list. Unparseable targets never fail
the call; they become records with the Error field set.

A Calculator supplies the current instant from an injected Clock:

	calc := countdown.NewCalculator(time.Now, time.Local)
	records, err := calc.Compute(targets)

# Arithmetic

With diff = target - now in milliseconds:

	totalHours = max(0, ceil(diff / 1h))
	days       = max(0, floor(diff / 1d))
	hours      = max(0, floor((diff rem 1d) / 1h))
	minutes    = max(0, floor((diff rem 1h) / 1m))
	seconds    = max(0, floor((diff rem 1m) / 1s))
	isComplete = diff <= 0

A completed countdown therefore always reports zero remaining time. The
Relative field ("2 years ago") is the only place elapsed time shows up.

# Ordering

 1. Completed, most recently passed target first
 2. Pending, soonest first
 3. Invalid, in input order

Ties keep input order.

# Date Formats

ParseTarget accepts RFC 3339 (with or without fractional seconds), ISO
date-times without an offset (read in now's location), bare dates (UTC
midnight) and the RFC 1123 / RFC 850 / Unix date formats.

# Targets

PairTargets pairs comma-separated instants and titles by position:

	targets := countdown.PairTargets(
		countdown.SplitList("2099-01-01T00:00:00Z,2030-06-01"),
		countdown.SplitList("Launch"),
	)
	// [{Launch 2099-01-01T00:00:00Z} {Countdown 2 2030-06-01}]
*/
package countdown
