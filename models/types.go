package models

// Error messages returned by the countdown endpoint
const (
	ErrMsgInvalidDate   = "Invalid date format. Use ISO 8601 format (e.g., 2024-12-31T23:59:59Z)"
	ErrMsgNotConfigured = "TARGET_DATETIMES (or TARGET_DATETIME) not configured in environment variables"
	ErrMsgServer        = "Server error calculating countdowns"
)

// Response types

type CountdownsResponse struct {
	Countdowns []Countdown `json:"countdowns"`
}

// Domain types

type TimeRemaining struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Countdown is one computed record. Invalid records carry Error and the raw
// target string; valid ones carry TotalHours, TimeRemaining and IsComplete.
type Countdown struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	TargetDateTime string         `json:"targetDateTime"`
	TotalHours     *int64         `json:"totalHours,omitempty"`
	TimeRemaining  *TimeRemaining `json:"timeRemaining,omitempty"`
	IsComplete     *bool          `json:"isComplete,omitempty"`
	Relative       string         `json:"relative,omitempty"`
	Error          string         `json:"error,omitempty"`
}

// Invalid reports whether the target could not be parsed
func (c Countdown) Invalid() bool {
	return c.Error != ""
}

// Complete reports whether a valid countdown has reached its target
func (c Countdown) Complete() bool {
	return c.IsComplete != nil && *c.IsComplete
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
