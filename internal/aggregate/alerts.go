package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/malexander/workhours/internal/timecalc"
)

// Severity of a compliance notification, ordered weakest to strongest.
type Severity int

const (
	Note Severity = iota
	Warning
	Alert
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "Note"
	case Warning:
		return "Warning"
	case Alert:
		return "Alert"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Category names the rule family a notification belongs to.
type Category int

const (
	RollingEightDay Category = iota
	DailyWorking
	DailyDriving
)

func (c Category) String() string {
	switch c {
	case RollingEightDay:
		return "RollingEightDay"
	case DailyWorking:
		return "DailyWorking"
	case DailyDriving:
		return "DailyDriving"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Notification is a single threshold breach on one date.
type Notification struct {
	Severity Severity
	Category Category
	Date     time.Time
	Message  string
}

// tier is one threshold level within a rule family. Tiers are checked
// strongest-first so a date yields at most one alert per family.
type tier struct {
	severity  Severity
	threshold time.Duration
	inclusive bool // meeting the threshold exactly counts (top tier only)
	message   string
}

// Thresholds and message text follow FMCSA-style hours-of-service limits:
// 80h in any 8 days, 15 working hours per day, 12 driving hours per day.
var families = []struct {
	category Category
	value    func(WindowRow) time.Duration
	tiers    []tier
}{
	{
		category: RollingEightDay,
		value:    func(r WindowRow) time.Duration { return r.EightDay },
		tiers: []tier{
			{Alert, 80 * time.Hour, true, "Exceeding 80 hours on"},
			{Warning, 75 * time.Hour, false, "Exceeding 75 of 80 hours on"},
			{Note, 70 * time.Hour, false, "Exceeding 70 of 80 hours on"},
		},
	},
	{
		category: DailyWorking,
		value:    func(r WindowRow) time.Duration { return r.DailyTotal },
		tiers: []tier{
			{Alert, 15 * time.Hour, true, "Exceeding 15 working hours on"},
			{Warning, 12 * time.Hour, false, "Exceeding 12 of 15 working hours on"},
			{Note, 10 * time.Hour, false, "Exceeding 10 of 15 working hours on"},
		},
	},
	{
		category: DailyDriving,
		value:    func(r WindowRow) time.Duration { return r.DriveTotal },
		tiers: []tier{
			{Alert, 12 * time.Hour, true, "Exceeding 12 driving hours on"},
			{Warning, 10 * time.Hour, false, "Exceeding 10 of 12 driving hours on"},
			{Note, 8 * time.Hour, false, "Exceeding 8 of 12 driving hours on"},
		},
	},
}

// severityPrefix renders the left-padded label column of a message line.
func severityPrefix(s Severity) string {
	switch s {
	case Alert:
		return fmt.Sprintf("%-10s", "-ALERT-:")
	case Warning:
		return fmt.Sprintf("%-10s", "Warning:")
	default:
		return fmt.Sprintf("%-10s", "Note:")
	}
}

// classify returns the strongest tier the value meets, or nil. Tiers are
// mutually exclusive by range: each non-inclusive tier is bounded above
// by the next tier's threshold, so a value exactly on such a boundary
// (75h rolling, 12h working, 10h driving) falls into no tier at all.
func classify(tiers []tier, v time.Duration) *tier {
	for i := range tiers {
		t := &tiers[i]
		if t.inclusive {
			if v >= t.threshold {
				return t
			}
			continue
		}
		// Reaching here means v is below every stronger threshold.
		if v == t.threshold {
			return nil
		}
		if v > t.threshold {
			return t
		}
	}
	return nil
}

// Collect classifies every row against the three rule families. The result
// is ordered family by family, dates ascending within each family; a date
// contributes at most one notification per family.
func Collect(rows []WindowRow) []Notification {
	var notes []Notification
	for _, fam := range families {
		for _, row := range rows {
			t := classify(fam.tiers, fam.value(row))
			if t == nil {
				continue
			}
			notes = append(notes, Notification{
				Severity: t.severity,
				Category: fam.category,
				Date:     row.Date,
				Message: fmt.Sprintf("%s%s %s",
					severityPrefix(t.severity), t.message, row.Date.Format(timecalc.DateFormat)),
			})
		}
	}
	return notes
}

// Notifications renders the notifications for the table rows within
// [start, stop] as one line each.
func Notifications(table *WindowTable, start, stop time.Time) string {
	var b strings.Builder
	for _, a := range Collect(table.Slice(start, stop)) {
		b.WriteString(a.Message)
		b.WriteString("\n")
	}
	return b.String()
}
