package timecalc

import (
	"fmt"
	"time"
)

// Layouts used everywhere a date or timestamp crosses a boundary
// (storage rows, report columns, CLI flags).
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
	ClockFormat    = "15:04"
)

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Monday returns the Monday of the calendar week containing t, at midnight.
func Monday(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	return StartOfDay(t.AddDate(0, 0, -(wd - 1)))
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateRange returns every calendar date from start through stop inclusive,
// normalised to midnight. An inverted range yields nil.
func DateRange(start, stop time.Time) []time.Time {
	var dates []time.Time
	for d := StartOfDay(start); !d.After(StartOfDay(stop)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// HoursMinutes splits a duration into whole hours and leftover minutes.
// Hours are not wrapped at 24: a 29h30m duration reports (29, 30).
func HoursMinutes(d time.Duration) (int, int) {
	total := int(d.Minutes())
	return total / 60, total % 60
}

// FormatHours renders a duration as zero-padded "HH:MM". Hours may exceed
// two digits for long rolling windows.
func FormatHours(d time.Duration) string {
	h, m := HoursMinutes(d)
	return fmt.Sprintf("%02d:%02d", h, m)
}
