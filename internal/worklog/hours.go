package worklog

import (
	"errors"
	"fmt"
)

// ErrInvalidHourRange is returned when the start hour is not before the
// end hour, or either falls outside the 24-hour clock.
var ErrInvalidHourRange = errors.New("start hour must be before end hour")

// HourRange is a configured span of hour slots, end inclusive.
type HourRange struct {
	Start int
	End   int
}

// Validate rejects malformed ranges before any log entries are generated.
func (r HourRange) Validate() error {
	if r.Start < 0 || r.Start > 23 || r.End < 0 || r.End > 23 {
		return fmt.Errorf("%w: hours must be 0-23, got %d-%d", ErrInvalidHourRange, r.Start, r.End)
	}
	if r.Start >= r.End {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidHourRange, r.Start, r.End)
	}
	return nil
}

// Labels returns the display label for every hour in the range, inclusive
// of the end hour.
func (r HourRange) Labels() []string {
	labels := make([]string, 0, r.End-r.Start+1)
	for h := r.Start; h <= r.End; h++ {
		labels = append(labels, HourLabel(h))
	}
	return labels
}

// HourLabel formats a 24-hour clock hour as a 12-hour slot label,
// e.g. 8 -> "8:00 AM", 13 -> "1:00 PM", 0 -> "12:00 AM".
func HourLabel(h int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:00 %s", hour12, suffix)
}
