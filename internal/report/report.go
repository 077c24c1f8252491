// Package report renders the fixed-width shift report consumed by the
// presentation surface. Column widths are fixed so the layout is stable
// across runs.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/malexander/workhours/internal/aggregate"
	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
	"github.com/malexander/workhours/internal/view"
)

// center pads s with spaces to width w, extra space going to the right.
// Strings already at or past the width are returned unchanged.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// jobColumn renders one job's three sub-columns for a single line.
func jobColumn(shift, shiftHrs, totalHrs string) string {
	return fmt.Sprintf("     %s %s %s", center(shift, 15), center(shiftHrs, 5), center(totalHrs, 5))
}

func header() string {
	return center("DATE:", 14) +
		jobColumn("---Bus Shift---", "Shift", "Total") +
		jobColumn("---HD Shift---", "Shift", "Total") +
		jobColumn("--Del Shift--", "Shift", "Total") +
		fmt.Sprintf("%20s", "Daily Total") +
		fmt.Sprintf("%20s", "8-Day Rolling")
}

// pick returns the i-th element of list, or blank when the list is shorter.
func pick(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return " "
}

// first returns s on line 0 and blank afterwards.
func first(s string, i int) string {
	if i == 0 {
		return s
	}
	return " "
}

// Build renders the report block for [start, stop]. Every date in the
// range must be present in the rolling-window table: the report range has
// to be a subset of the table's span.
func Build(bus, hd, delivery []model.Shift, start, stop time.Time, table *aggregate.WindowTable, now time.Time) (string, error) {
	busRange := view.NewTimeRange(bus, start, stop)
	hdRange := view.NewTimeRange(hd, start, stop)
	deliveryRange := view.NewTimeRange(delivery, start, stop)

	head := header()
	rule := strings.Repeat("=", len(head))
	todayRule := strings.Repeat("*", len(head))

	lines := []string{head}
	for i, date := range timecalc.DateRange(start, stop) {
		row, ok := table.Row(date)
		if !ok {
			return "", fmt.Errorf("report range includes %s which is outside the rolling-window table",
				date.Format(timecalc.DateFormat))
		}

		today := timecalc.SameDay(date, now)
		lines = append(lines, rule)
		if today {
			lines = append(lines, "\nToday:", todayRule)
		}

		busDay := busRange.Day(i)
		hdDay := hdRange.Day(i)
		deliveryDay := deliveryRange.Day(i)

		n := busRange.NumShifts(i)
		if m := hdRange.NumShifts(i); m > n {
			n = m
		}
		if m := deliveryRange.NumShifts(i); m > n {
			n = m
		}

		dayDate := date.Format("Mon 2006-01-02")
		for line := 0; line < n; line++ {
			dateCell := strings.Repeat(" ", len(dayDate))
			if line == 0 {
				dateCell = dayDate
			}
			lines = append(lines,
				center(dateCell, 10)+
					jobColumn(pick(busDay.Shifts, line), pick(busDay.Durations, line), first(busDay.Total, line))+
					jobColumn(pick(hdDay.Shifts, line), pick(hdDay.Durations, line), first(hdDay.Total, line))+
					jobColumn(pick(deliveryDay.Shifts, line), pick(deliveryDay.Durations, line), first(deliveryDay.Total, line))+
					fmt.Sprintf("%20s", first(timecalc.FormatHours(row.DailyTotal), line))+
					fmt.Sprintf("%20s", first(timecalc.FormatHours(row.EightDay), line)))
		}

		if today {
			lines = append(lines, todayRule+"\n")
		}
	}
	return strings.Join(lines, "\n"), nil
}
