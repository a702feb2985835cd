// Package timefmt turns "HH:MM" wall-clock strings into the countdown and
// duration labels shown on the itinerary timeline.
//
// Wall-clock strings carry no date and no timezone. Every function here is
// pure: the current moment is always passed in, never read.
package timefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Finished is returned by CountdownToStart once the target time has been
// reached today.
const Finished = "Terminado"

const minutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned when a wall-clock string is not a valid
// 24-hour "HH:MM" time.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// Clock is a time of day with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour wall-clock string. The hour may have one or two
// digits ("7:05" and "07:05" are equivalent); the minute must have exactly two.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return Clock{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTimeFormat, s)
	}

	// allDigits guarantees Atoi cannot fail.
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 {
		return Clock{}, fmt.Errorf("%w: hour %d out of range in %q", ErrInvalidTimeFormat, h, s)
	}
	if m > 59 {
		return Clock{}, fmt.Errorf("%w: minute %d out of range in %q", ErrInvalidTimeFormat, m, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String renders c as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant at c on the calendar date of day, in day's location,
// with zero seconds.
func (c Clock) On(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// CountdownToStart returns the time remaining until target, e.g. "1h 30m" or
// "59m", or Finished when target is at or before now.
//
// The target is always pinned to now's calendar date. A time that has already
// passed today reports Finished; it is never treated as tomorrow's occurrence.
func CountdownToStart(target string, now time.Time) (string, error) {
	c, err := ParseClock(target)
	if err != nil {
		return "", fmt.Errorf("timefmt.CountdownToStart: %w", err)
	}

	at := c.On(now)
	if !at.After(now) {
		return Finished, nil
	}

	remaining := at.Sub(now)
	hrs := int(remaining / time.Hour)
	mins := int((remaining % time.Hour) / time.Minute)

	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins), nil
	}
	return fmt.Sprintf("%dm", mins), nil
}

// Duration returns the length of the span from start to end, e.g. "2h 30m",
// "2h" or "45 min". An end before start is taken to cross midnight once.
func Duration(start, end string) (string, error) {
	s, err := ParseClock(start)
	if err != nil {
		return "", fmt.Errorf("timefmt.Duration: start: %w", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return "", fmt.Errorf("timefmt.Duration: end: %w", err)
	}

	diff := e.Minutes() - s.Minutes()
	if diff < 0 {
		diff += minutesPerDay
	}

	hours, minutes := diff/60, diff%60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes), nil
	case hours > 0:
		return fmt.Sprintf("%dh", hours), nil
	default:
		return fmt.Sprintf("%d min", minutes), nil
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
