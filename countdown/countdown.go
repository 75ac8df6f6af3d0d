// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package countdown

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/countdown/models"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

var ErrNoTargets = errors.New("no countdown targets configured")

// recordNamespace scopes the name-based record IDs
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("countdown:record"))

// Clock returns the current instant
type Clock func() time.Time

// Calculator computes countdowns against an injected clock
type Calculator struct {
	clock Clock
	loc   *time.Location
}

// NewCalculator returns a Calculator. A nil clock uses time.Now; a nil
// location interprets zone-less targets in time.Local.
func NewCalculator(clock Clock, loc *time.Location) *Calculator {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{clock: clock, loc: loc}
}

// Now returns the calculator's current instant in its location
func (c *Calculator) Now() time.Time {
	return c.clock().In(c.loc)
}

// Compute computes and orders countdowns for targets at the current instant
func (c *Calculator) Compute(targets []Target) ([]models.Countdown, error) {
	return Compute(c.Now(), targets)
}

// entry keeps the sort keys next to the record they belong to
type entry struct {
	record models.Countdown
	target time.Time
	diffMs int64
	group  int
}

const (
	groupCompleted = iota
	groupPending
	groupInvalid
)

// Compute converts targets into countdown records relative to now.
// Zone-less targets are read in now's location. The result is ordered:
// completed (most recently passed first), pending (soonest first), then
// invalid targets in input order.
func Compute(now time.Time, targets []Target) ([]models.Countdown, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	entries := make([]entry, len(targets))
	for i, t := range targets {
		entries[i] = computeOne(now, i, t)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.group != b.group {
			return a.group < b.group
		}

		switch a.group {
		case groupCompleted:
			return a.target.After(b.target)
		case groupPending:
			return a.diffMs < b.diffMs
		default:
			return false
		}
	})

	records := make([]models.Countdown, len(entries))
	for i, e := range entries {
		records[i] = e.record
	}
	return records, nil
}

func computeOne(now time.Time, index int, t Target) entry {
	rec := models.Countdown{
		ID:    RecordID(index, t),
		Title: t.Title,
	}

	target, err := ParseTarget(t.Raw, now.Location())
	if err != nil {
		rec.TargetDateTime = t.Raw
		rec.Error = models.ErrMsgInvalidDate
		return entry{record: rec, group: groupInvalid}
	}

	diffMs := target.UnixMilli() - now.UnixMilli()
	totalHours := max(0, ceilDiv(diffMs, msPerHour))
	remaining := Breakdown(diffMs)
	complete := diffMs <= 0

	rec.TargetDateTime = target.UTC().Format(ISOLayout)
	rec.TotalHours = &totalHours
	rec.TimeRemaining = &remaining
	rec.IsComplete = &complete
	rec.Relative = humanize.RelTime(target, now, "ago", "from now")

	group := groupPending
	if complete {
		group = groupCompleted
	}
	return entry{record: rec, target: target, diffMs: diffMs, group: group}
}

// Breakdown splits a signed millisecond difference into days, hours,
// minutes and seconds. Each component uses the truncated remainder of the
// raw difference, floors, then clamps at zero, so any non-positive
// difference yields all zeros.
func Breakdown(diffMs int64) models.TimeRemaining {
	return models.TimeRemaining{
		Days:    max(0, floorDiv(diffMs, msPerDay)),
		Hours:   max(0, floorDiv(diffMs%msPerDay, msPerHour)),
		Minutes: max(0, floorDiv(diffMs%msPerHour, msPerMinute)),
		Seconds: max(0, floorDiv(diffMs%msPerMinute, msPerSecond)),
	}
}

// RecordID derives a stable identifier from a target's position and content
func RecordID(index int, t Target) string {
	name := fmt.Sprintf("%d\x00%s\x00%s", index, t.Title, t.Raw)
	return uuid.NewSHA1(recordNamespace, []byte(name)).String()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}
