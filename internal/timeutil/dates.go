// Package timeutil provides the date and time formatting helpers shared by
// the export, mail, and presentation layers.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// fileDateLayout matches the export file name convention,
	// e.g. "Friday_March_14_2025".
	fileDateLayout = "Monday_January_02_2006"
	// displayDateLayout is the long human-readable form,
	// e.g. "Friday, March 14, 2025".
	displayDateLayout = "Monday, January 2, 2006"
	// isoDateLayout is the storage key form, e.g. "2025-03-14".
	isoDateLayout = "2006-01-02"
)

// FileDate formats a date for use in export file names and the default
// email subject.
func FileDate(t time.Time) string {
	return t.Format(fileDateLayout)
}

// DisplayDate formats a date for document headers and email bodies.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// ISODate formats a date as its YYYY-MM-DD storage key.
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ClockTime formats the time-of-day shown in the form header,
// e.g. "3:04 PM".
func ClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// Location resolves a configured timezone name. "Local" or "" selects the
// system timezone; unknown names fall back to UTC rather than failing.
func Location(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NowIn returns the current time in the configured timezone.
func NowIn(name string) time.Time {
	return time.Now().In(Location(name))
}
