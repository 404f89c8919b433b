package shift

import "github.com/buckyapp/bucky/internal/shiftcore"

// ClockTime is a time of day in 24-hour clock, with minute precision.
type ClockTime = shiftcore.ClockTime

// Shift is one worked period tied to an income stream by id. The stream is a
// weak reference: it is looked up at computation time and may be absent.
// Override fields, when set, replace the corresponding computed breakdown
// value outright.
type Shift = shiftcore.Shift

// ParseClockTime parses an "HH:mm" string. Hour must be in [0,23] and minute
// in [0,59].
func ParseClockTime(s string) (ClockTime, error) {
	return shiftcore.ParseClockTime(s)
}

// WorkedHours returns the shift length in hours after subtracting the break.
// An end time earlier than the start time means the shift crosses midnight.
// A break longer than the shift yields 0, never a negative value.
func WorkedHours(start, end ClockTime, breakMinutes int) float64 {
	return shiftcore.WorkedHours(start, end, breakMinutes)
}
