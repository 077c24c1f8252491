// Package editor implements the save path behind the week editor: parse
// the edited shift strings, detect which dates actually changed, validate
// them, and write each changed date through the store.
package editor

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// Store is the slice of the storage layer the editor needs.
type Store interface {
	ReplaceDay(ctx context.Context, job model.Job, date time.Time, old, new []model.Shift) error
}

// Status strings surfaced to the user after a save attempt.
const (
	StatusSaved       = "Changes saved"
	StatusNoChanges   = "No changes saved"
	StatusFormatError = "Formatting error"
)

// SaveWeek compares the edited shift strings against the job's existing
// shifts date by date and persists every changed date. It returns a
// status string: StatusSaved or StatusNoChanges on success, or the
// specific format/consistency message when the input is rejected. A
// non-nil error means a storage write failed.
//
// edited holds one slice of shift strings per weekday; empty strings mean
// no shift. A rejected date blocks the save from that date onward; dates
// already written stay written, each one atomically.
func SaveWeek(ctx context.Context, store Store, log *zap.Logger, job model.Job,
	dates [7]time.Time, existing []model.Shift, edited [7][]string, today time.Time) (string, error) {

	parsed, err := parseEdited(dates, edited, today)
	if err != nil {
		log.Error("save rejected", zap.String("table", job.Table()), zap.Error(err))
		var cerr *model.ConsistencyError
		if errors.As(err, &cerr) {
			// shape was right but the clock values were not
			return cerr.Status, nil
		}
		return StatusFormatError, nil
	}

	changed := false
	for i, date := range dates {
		old := model.ByDate(existing, date)
		new := parsed[i]
		if !differs(old, new) {
			continue
		}
		if err := model.CheckDay(new); err != nil {
			var cerr *model.ConsistencyError
			if errors.As(err, &cerr) {
				log.Error("save rejected", zap.String("table", job.Table()),
					zap.String("date", date.Format(timecalc.DateFormat)), zap.Error(err))
				return cerr.Status, nil
			}
			return "", err
		}
		if err := store.ReplaceDay(ctx, job, date, old, new); err != nil {
			return "", err
		}
		changed = true
	}

	if changed {
		return StatusSaved, nil
	}
	return StatusNoChanges, nil
}

// parseEdited turns the edited strings into shift rows per weekday,
// ordered by start time. Dates after today are marked scheduled.
func parseEdited(dates [7]time.Time, edited [7][]string, today time.Time) ([7][]model.Shift, error) {
	var parsed [7][]model.Shift
	todayStr := timecalc.StartOfDay(today).Format(timecalc.DateFormat)
	for i, date := range dates {
		for _, text := range edited[i] {
			if text == "" || text == " " {
				continue
			}
			shift, err := model.ParseShiftText(date, text)
			if err != nil {
				return parsed, err
			}
			shift.Scheduled = date.Format(timecalc.DateFormat) > todayStr
			parsed[i] = append(parsed[i], shift)
		}
		sort.Slice(parsed[i], func(a, b int) bool { return parsed[i][a].Start.Before(parsed[i][b].Start) })
	}
	return parsed, nil
}

// differs reports whether a date's edited rows deviate from the stored
// ones in count, start, end, or scheduled flag.
func differs(old, new []model.Shift) bool {
	if len(old) != len(new) {
		return true
	}
	for i := range old {
		if !old[i].Start.Equal(new[i].Start) ||
			!old[i].End.Equal(new[i].End) ||
			old[i].Scheduled != new[i].Scheduled {
			return true
		}
	}
	return false
}

// ScheduledUpdates returns the distinct dates before today whose shifts
// are still flagged scheduled, sorted ascending. These are past dates
// awaiting confirmation with actual worked times.
func ScheduledUpdates(shifts []model.Shift, today time.Time) []string {
	todayStr := timecalc.StartOfDay(today).Format(timecalc.DateFormat)
	seen := make(map[string]bool)
	var dates []string
	for _, s := range shifts {
		d := s.Date.Format(timecalc.DateFormat)
		if d >= todayStr || !s.Scheduled || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
