package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SlotStepMinutes is the patient-facing booking cadence. This exact
// granularity is a business rule, not configurable.
const SlotStepMinutes = 7

// Admin-configurable bounds for fixed-slot interval generation.
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 120
)

var (
	ErrInvalidClock    = errors.New("invalid time format, use HH:MM")
	ErrInvalidInterval = errors.New("interval minutes must be between 5 and 120")
)

// ParseClock parses "HH:MM" (an optional seconds component is ignored) into
// integer hour and minute. All slot comparisons are on (hour, minute) pairs,
// never on raw strings.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, 0, ErrInvalidClock
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidClock
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidClock
	}
	return hour, minute, nil
}

// FormatClock renders a zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// TruncateToMinute drops any seconds component from a stored time value and
// re-pads it ("09:00:00" -> "09:00"). Values that do not parse are returned
// unchanged so the caller's comparison simply never matches them.
func TruncateToMinute(s string) string {
	h, m, err := ParseClock(s)
	if err != nil {
		return s
	}
	return FormatClock(h, m)
}

// GenerateSlots produces the ordered candidate times for a working interval
// at the fixed 7-minute cadence. The minute lattice restarts each hour to
// avoid cross-hour drift: within the start hour, lattice values before the
// start minute are skipped, and generation stops once the end boundary is
// reached. Bounds are [start, end).
func GenerateSlots(iv Interval) ([]string, error) {
	return generate(iv, SlotStepMinutes)
}

// GenerateIntervalSlots is the admin fixed-slot generation path: same
// lattice walk with an admin-chosen step between 5 and 120 minutes.
func GenerateIntervalSlots(iv Interval, stepMinutes int) ([]string, error) {
	if stepMinutes < MinIntervalMinutes || stepMinutes > MaxIntervalMinutes {
		return nil, ErrInvalidInterval
	}
	return generate(iv, stepMinutes)
}

func generate(iv Interval, step int) ([]string, error) {
	startH, startM, err := ParseClock(iv.Start)
	if err != nil {
		return nil, err
	}
	endH, endM, err := ParseClock(iv.End)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for h := startH; h <= endH; h++ {
		for m := 0; m < 60; m += step {
			if h == startH && m < startM {
				continue
			}
			if h == endH && m >= endM {
				break
			}
			slots = append(slots, FormatClock(h, m))
		}
	}
	return slots, nil
}
