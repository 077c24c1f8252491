// Package manifest extracts a week of shifts from free-form text
// transcribed off a scanned work schedule.
package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/view"
)

var (
	coordDateRe = regexp.MustCompile(`(\d{2}/\d{2})`)
	shiftRe     = regexp.MustCompile(`(\d{4}-\d{4})`)
)

// expectedShifts is two shifts per weekday, Monday through Friday.
const expectedShifts = 10

// Process parses manifest text against a job's existing shift set and
// returns the Week the manifest covers with weekdays Monday-Friday
// populated. Saturday and Sunday keep whatever the shift set holds.
//
// The text must carry a coordinator line ("Coord ... MM/DD") anchoring
// the week and exactly ten military-time intervals (DDDD-DDDD). The MM/DD
// marker has no year; the current year is assumed unless that date has
// already passed relative to now, in which case the week belongs to next
// year.
func Process(text string, shifts []model.Shift, now time.Time) (*view.Week, error) {
	var weekOf string
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "Coord") {
			if m := coordDateRe.FindString(line); m != "" {
				weekOf = m
			}
		}
		tokens = append(tokens, shiftRe.FindAllString(line, -1)...)
	}

	if weekOf == "" {
		return nil, fmt.Errorf("manifest: no coordinator date marker found")
	}
	if len(tokens) != expectedShifts {
		return nil, fmt.Errorf("manifest: expected %d shift entries, found %d", expectedShifts, len(tokens))
	}

	// 1500-1800 -> 15:00-18:00
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok[:2] + ":" + tok[2:7] + ":" + tok[7:]
	}

	anchor, err := resolveWeekOf(weekOf, now)
	if err != nil {
		return nil, err
	}

	week := view.NewWeek(shifts, anchor)

	// The manifest records a morning and an afternoon shift per weekday
	// (tokens i and i+5) but not always in that order.
	for i := 0; i < 5; i++ {
		if texts[i][:5] > texts[i+5][:5] {
			texts[i], texts[i+5] = texts[i+5], texts[i]
		}
	}
	for i, t := range texts {
		if t == "00:00-00:00" {
			texts[i] = ""
		}
	}
	for i := 0; i < 5; i++ {
		week.SetShifts(i, []string{texts[i], texts[i+5]})
	}
	return week, nil
}

// resolveWeekOf turns an MM/DD marker into a concrete date near now.
func resolveWeekOf(weekOf string, now time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("01/02", weekOf, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("manifest: bad date marker %q: %w", weekOf, err)
	}
	anchor, err := dateInYear(now.Year(), t.Month(), t.Day(), now.Location())
	if err != nil {
		return time.Time{}, err
	}
	if anchor.Before(now) {
		anchor, err = dateInYear(now.Year()+1, t.Month(), t.Day(), now.Location())
		if err != nil {
			return time.Time{}, err
		}
	}
	return anchor, nil
}

// dateInYear builds the date without time.Date's silent normalization,
// so "02/29" in a non-leap year is an error rather than March 1.
func dateInYear(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("manifest: date marker %02d/%02d does not exist in %d", int(month), day, year)
	}
	return t, nil
}
