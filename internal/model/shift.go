package model

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/malexander/workhours/internal/timecalc"
)

// Shift is one worked or scheduled interval for one job on one date.
type Shift struct {
	ID        string    // storage row identity, assigned on insert
	Date      time.Time // calendar date at midnight
	Start     time.Time
	End       time.Time
	Scheduled bool // future plan rather than a completed record
}

// Duration returns the length of the shift.
func (s Shift) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Text renders the shift in the HH:MM-HH:MM boundary format.
func (s Shift) Text() string {
	return s.Start.Format(timecalc.ClockFormat) + "-" + s.End.Format(timecalc.ClockFormat)
}

var shiftTextRe = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// ErrFormat is returned when shift text does not match HH:MM-HH:MM.
var ErrFormat = errors.New("shift text must match HH:MM-HH:MM")

// ParseShiftText builds a Shift on the given date from "HH:MM-HH:MM" text.
// A string that matches the shape but holds an impossible clock time (such
// as "25:00") fails with a consistency error rather than ErrFormat.
func ParseShiftText(date time.Time, text string) (Shift, error) {
	if !shiftTextRe.MatchString(text) {
		return Shift{}, ErrFormat
	}
	day := timecalc.StartOfDay(date)
	start, err := time.ParseInLocation(timecalc.ClockFormat, text[:5], day.Location())
	if err != nil {
		return Shift{}, &ConsistencyError{Status: StatusBadTimestamp}
	}
	end, err := time.ParseInLocation(timecalc.ClockFormat, text[6:], day.Location())
	if err != nil {
		return Shift{}, &ConsistencyError{Status: StatusBadTimestamp}
	}
	return Shift{
		Date:  day,
		Start: time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, day.Location()),
	}, nil
}

// ByDate returns the shifts falling on the given calendar date, ordered by
// start time. Date matching is exact calendar-date equality.
func ByDate(shifts []Shift, date time.Time) []Shift {
	key := date.Format(timecalc.DateFormat)
	var out []Shift
	for _, s := range shifts {
		if s.Date.Format(timecalc.DateFormat) == key {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Span returns the earliest and latest dates present in any of the given
// shift sets. ok is false when every set is empty.
func Span(sets ...[]Shift) (min, max time.Time, ok bool) {
	for _, set := range sets {
		for _, s := range set {
			d := timecalc.StartOfDay(s.Date)
			if !ok {
				min, max, ok = d, d, true
				continue
			}
			if d.Before(min) {
				min = d
			}
			if d.After(max) {
				max = d
			}
		}
	}
	return min, max, ok
}

// Statuses surfaced by per-date consistency validation. The exact strings
// are shown to the user on a rejected save.
const (
	StatusDateMismatch   = "Date mismatches"
	StatusBadTimestamp   = "Date/time format issue"
	StatusBadOrder       = "Date order issues - same shift"
	StatusOverlap        = "Date order issues - overlapping shifts"
	StatusDuplicateStart = "Duplicate start times"
)

// ConsistencyError is a recoverable validation failure that blocks a save.
type ConsistencyError struct {
	Status string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency error: %s", e.Status)
}

// CheckDay validates the shifts for a single calendar date: each shift's
// start and end must fall on its date, each must end after it starts, and
// shifts must not overlap or share a start time. The slice is expected to
// be ordered by start time (as returned by ByDate).
func CheckDay(shifts []Shift) error {
	for _, s := range shifts {
		if !timecalc.SameDay(s.Date, s.Start) || !timecalc.SameDay(s.Date, s.End) {
			return &ConsistencyError{Status: StatusDateMismatch}
		}
	}
	for _, s := range shifts {
		if !s.Start.Before(s.End) {
			return &ConsistencyError{Status: StatusBadOrder}
		}
	}
	for i := 1; i < len(shifts); i++ {
		if shifts[i].Start.Equal(shifts[i-1].Start) {
			return &ConsistencyError{Status: StatusDuplicateStart}
		}
		if !shifts[i-1].End.Before(shifts[i].Start) {
			return &ConsistencyError{Status: StatusOverlap}
		}
	}
	return nil
}
