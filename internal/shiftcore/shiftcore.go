// Package shiftcore holds the shift domain types shared by pkg/shift and
// pkg/payroll. pkg/shift re-exports them via type aliases, so shift.Shift
// and shiftcore.Shift are the same type.
package shiftcore

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a time of day in 24-hour clock, with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:mm" string. Hour must be in [0,23] and minute
// in [0,59].
func ParseClockTime(s string) (ClockTime, error) {
	hourPart, minutePart, found := strings.Cut(s, ":")
	if !found {
		return ClockTime{}, fmt.Errorf("invalid clock time: %q", s)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in clock time: %q", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in clock time: %q", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (c ClockTime) MinutesOfDay() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Shift is one worked period tied to an income stream by id. The stream is a
// weak reference: it is looked up at computation time and may be absent.
// Override fields, when set, replace the corresponding computed breakdown
// value outright.
type Shift struct {
	ID           string
	StreamID     string
	Date         time.Time
	StartTime    ClockTime
	EndTime      ClockTime
	BreakMinutes int

	IsPaid           bool
	ActualPaidAmount *float64

	OverrideGross *float64
	OverrideTax   *float64
	OverrideSuper *float64
	OverrideNet   *float64
}

// WorkedHours returns the shift length in hours after subtracting the break.
// An end time earlier than the start time means the shift crosses midnight.
// A break longer than the shift yields 0, never a negative value.
func WorkedHours(start, end ClockTime, breakMinutes int) float64 {
	diff := end.MinutesOfDay() - start.MinutesOfDay()
	if diff < 0 {
		diff += minutesPerDay
	}
	return max(0, float64(diff-breakMinutes)/60)
}

func (s Shift) WorkedHours() float64 {
	return WorkedHours(s.StartTime, s.EndTime, s.BreakMinutes)
}
