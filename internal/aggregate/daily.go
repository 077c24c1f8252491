// Package aggregate reduces raw shift records into daily summaries, the
// cross-job rolling-window table, and compliance notifications.
package aggregate

import (
	"time"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// DaySummary aggregates one job's shifts on one date. The slices are
// parallel: Shifts[i], Durations[i] and Scheduled[i] describe the same
// interval.
type DaySummary struct {
	Shifts    []string // HH:MM-HH:MM, ordered by start time
	Durations []time.Duration
	Total     time.Duration
	Scheduled []bool
}

// FormattedDurations renders each per-shift duration as HH:MM.
func (d *DaySummary) FormattedDurations() []string {
	out := make([]string, len(d.Durations))
	for i, dur := range d.Durations {
		out[i] = timecalc.FormatHours(dur)
	}
	return out
}

// FormattedTotal renders the date total as HH:MM.
func (d *DaySummary) FormattedTotal() string {
	return timecalc.FormatHours(d.Total)
}

// Daily reduces a job's shifts on the given date to a DaySummary. A date
// with no shifts is not an error; it yields nil.
func Daily(shifts []model.Shift, date time.Time) *DaySummary {
	day := model.ByDate(shifts, date)
	if len(day) == 0 {
		return nil
	}
	sum := &DaySummary{
		Shifts:    make([]string, 0, len(day)),
		Durations: make([]time.Duration, 0, len(day)),
		Scheduled: make([]bool, 0, len(day)),
	}
	for _, s := range day {
		sum.Shifts = append(sum.Shifts, s.Text())
		sum.Durations = append(sum.Durations, s.Duration())
		sum.Scheduled = append(sum.Scheduled, s.Scheduled)
		sum.Total += s.Duration()
	}
	return sum
}
