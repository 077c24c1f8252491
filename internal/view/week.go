// Package view provides the read projections consumed by reporting and
// editing: a Monday-anchored Week and an arbitrary-bounds TimeRange.
package view

import (
	"time"

	"github.com/malexander/workhours/internal/aggregate"
	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// Day is one date's worth of a projection. Shift and duration values are
// already rendered in the HH:MM boundary format.
type Day struct {
	Date      time.Time
	Shifts    []string // HH:MM-HH:MM, empty when the date has no shifts
	Durations []string // HH:MM per shift
	Total     string   // HH:MM for the date, "" when empty
	Scheduled []bool
}

// Week is a Monday-anchored 7-day projection for one job. Weekday index 0
// is Monday, 6 is Sunday. Shift lists can be replaced per weekday ahead
// of a save; replacement does not recompute durations.
type Week struct {
	days [7]Day
}

// NewWeek builds the week containing anchor from a job's shift set.
func NewWeek(shifts []model.Shift, anchor time.Time) *Week {
	w := &Week{}
	monday := timecalc.Monday(anchor)
	for i := 0; i < 7; i++ {
		w.days[i] = buildDay(shifts, monday.AddDate(0, 0, i))
	}
	return w
}

// Day returns the projection for weekday index 0 (Monday) through 6 (Sunday).
func (w *Week) Day(i int) Day {
	return w.days[i]
}

// SetShifts replaces the shift-string list for one weekday.
func (w *Week) SetShifts(i int, shifts []string) {
	w.days[i].Shifts = shifts
}

// Dates returns the seven dates Monday through Sunday.
func (w *Week) Dates() [7]time.Time {
	var dates [7]time.Time
	for i, d := range w.days {
		dates[i] = d.Date
	}
	return dates
}

func buildDay(shifts []model.Shift, date time.Time) Day {
	day := Day{Date: date}
	if sum := aggregate.Daily(shifts, date); sum != nil {
		day.Shifts = sum.Shifts
		day.Durations = sum.FormattedDurations()
		day.Total = sum.FormattedTotal()
		day.Scheduled = sum.Scheduled
	}
	return day
}
