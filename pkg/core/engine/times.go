package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned when a wall-clock value is not a valid "HH:MM" string.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ToMinutes parses an "HH:MM" wall-clock string and returns minutes since midnight.
// Hours must be 0-23 and minutes 0-59; anything else fails with ErrInvalidTimeFormat.
func ToMinutes(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}

	return hours*60 + minutes, nil
}

// NormalizeOvernight adjusts a shift end time for shifts that cross midnight.
// If end < start the shift runs into the next day, so a full day is added.
// All duration and overlap arithmetic must use the adjusted end.
func NormalizeOvernight(start, end int) int {
	if end < start {
		return end + minutesPerDay
	}
	return end
}

// Overlaps reports whether two half-open minute intervals intersect.
// Callers are expected to normalize overnight ends first.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}

// parseWindow parses a start/end pair and returns the interval with the end
// already normalized for overnight shifts.
func parseWindow(start, end string) (interval, error) {
	startMin, err := ToMinutes(start)
	if err != nil {
		return interval{}, err
	}
	endMin, err := ToMinutes(end)
	if err != nil {
		return interval{}, err
	}
	return interval{start: startMin, end: NormalizeOvernight(startMin, endMin)}, nil
}

// datesBetween expands an inclusive "2006-01-02" date range into ordered date strings.
func datesBetween(from, to string) ([]string, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid range start %q: %w", from, err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid range end %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s is before range start %s", to, from)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates, nil
}
