package view

import (
	"time"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// TimeRange is a read-only multi-day projection for one job over an
// inclusive date range of arbitrary length.
type TimeRange struct {
	days []Day
}

// NewTimeRange builds the projection for every date from start through
// stop inclusive.
func NewTimeRange(shifts []model.Shift, start, stop time.Time) *TimeRange {
	r := &TimeRange{}
	for _, date := range timecalc.DateRange(start, stop) {
		r.days = append(r.days, buildDay(shifts, date))
	}
	return r
}

// Len returns the number of days in the range.
func (r *TimeRange) Len() int {
	return len(r.days)
}

// Day returns the projection for the i-th date of the range.
func (r *TimeRange) Day(i int) Day {
	return r.days[i]
}

// NumShifts returns the shift count on the i-th date; an empty date still
// occupies one report line.
func (r *TimeRange) NumShifts(i int) int {
	if n := len(r.days[i].Shifts); n > 0 {
		return n
	}
	return 1
}
