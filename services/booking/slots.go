package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSlotInterval is the spacing between consecutive bookable start
// times, in minutes.
const DefaultSlotInterval = 30

// parseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// formatClock renders minutes from midnight back to "HH:MM".
func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// GenerateSlots expands one availability window into discrete bookable start
// times, intervalMinutes apart, over the half-open range [start, end). The
// slot starting exactly at end is excluded. Malformed bounds, start >= end
// or a non-positive interval all yield an empty list rather than an error.
func GenerateSlots(start, end string, intervalMinutes int) []string {
	startMin, ok := parseClock(start)
	if !ok {
		return nil
	}
	endMin, ok := parseClock(end)
	if !ok {
		return nil
	}
	if intervalMinutes <= 0 || startMin >= endMin {
		return nil
	}

	var slots []string
	for m := startMin; m < endMin; m += intervalMinutes {
		slots = append(slots, formatClock(m))
	}
	return slots
}
