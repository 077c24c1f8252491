package aggregate

import (
	"time"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// WindowRow is one calendar date's cross-job aggregate.
type WindowRow struct {
	Date       time.Time
	Bus        time.Duration
	HomeDepot  time.Duration
	Delivery   time.Duration
	DailyTotal time.Duration // Bus + HomeDepot + Delivery
	DriveTotal time.Duration // Bus + Delivery
	EightDay   time.Duration // trailing 8-day sum of DailyTotal
}

// WindowTable holds one WindowRow per calendar date over the contiguous
// span of every observed shift. Dates with no shifts carry zero totals.
type WindowTable struct {
	Rows  []WindowRow
	index map[string]int
}

// BuildWindow computes the rolling-window table across the three jobs'
// full shift sets. The span runs from the earliest to the latest shift
// date across all jobs; the table is empty when no shifts exist at all.
//
// The 8-day trailing sum is kept by a fixed-size sliding accumulator
// seeded with eight zero entries, so row i holds the sum of DailyTotal
// over dates max(0, i-7)..i.
func BuildWindow(bus, hd, delivery []model.Shift) *WindowTable {
	table := &WindowTable{index: make(map[string]int)}
	min, max, ok := model.Span(bus, hd, delivery)
	if !ok {
		return table
	}

	window := make([]time.Duration, 8)
	for _, date := range timecalc.DateRange(min, max) {
		row := WindowRow{Date: date}
		if sum := Daily(bus, date); sum != nil {
			row.Bus = sum.Total
		}
		if sum := Daily(hd, date); sum != nil {
			row.HomeDepot = sum.Total
		}
		if sum := Daily(delivery, date); sum != nil {
			row.Delivery = sum.Total
		}
		row.DailyTotal = row.Bus + row.HomeDepot + row.Delivery
		row.DriveTotal = row.Bus + row.Delivery

		window = append(window[1:], row.DailyTotal)
		for _, d := range window {
			row.EightDay += d
		}

		table.index[date.Format(timecalc.DateFormat)] = len(table.Rows)
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Row returns the aggregate for an exact calendar date.
func (t *WindowTable) Row(date time.Time) (WindowRow, bool) {
	i, ok := t.index[date.Format(timecalc.DateFormat)]
	if !ok {
		return WindowRow{}, false
	}
	return t.Rows[i], true
}

// Slice returns the rows whose dates fall within [start, stop] inclusive.
func (t *WindowTable) Slice(start, stop time.Time) []WindowRow {
	from := timecalc.StartOfDay(start)
	to := timecalc.StartOfDay(stop)
	var rows []WindowRow
	for _, row := range t.Rows {
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
