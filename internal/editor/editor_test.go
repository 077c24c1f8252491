package editor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/malexander/workhours/internal/editor"
	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/view"
)

// fakeStore records ReplaceDay calls without touching a database.
type fakeStore struct {
	calls []replaceCall
}

type replaceCall struct {
	job      model.Job
	date     time.Time
	old, new []model.Shift
}

func (f *fakeStore) ReplaceDay(_ context.Context, job model.Job, date time.Time, old, new []model.Shift) error {
	f.calls = append(f.calls, replaceCall{job: job, date: date, old: old, new: new})
	return nil
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func stored(t *testing.T, id string, date time.Time, text string, scheduled bool) model.Shift {
	t.Helper()
	s, err := model.ParseShiftText(date, text)
	require.NoError(t, err)
	s.ID = id
	s.Scheduled = scheduled
	return s
}

// weekArgs builds the dates and edited strings for the week of the given
// anchor from the job's current shifts.
func weekArgs(shifts []model.Shift, anchor time.Time) ([7]time.Time, [7][]string) {
	w := view.NewWeek(shifts, anchor)
	var edited [7][]string
	for i := 0; i < 7; i++ {
		edited[i] = w.Day(i).Shifts
	}
	return w.Dates(), edited
}

func saveWeek(t *testing.T, store *fakeStore, existing []model.Shift, dates [7]time.Time, edited [7][]string, today time.Time) string {
	t.Helper()
	status, err := editor.SaveWeek(context.Background(), store, zap.NewNop(), model.Bus, dates, existing, edited, today)
	require.NoError(t, err)
	return status
}

func TestSaveWeekNoChanges(t *testing.T) {
	existing := []model.Shift{stored(t, "a", day(2), "09:00-17:00", false)}
	dates, edited := weekArgs(existing, day(2))

	store := &fakeStore{}
	status := saveWeek(t, store, existing, dates, edited, day(4))
	assert.Equal(t, editor.StatusNoChanges, status)
	assert.Empty(t, store.calls)
}

func TestSaveWeekRowUpdate(t *testing.T) {
	existing := []model.Shift{stored(t, "a", day(2), "09:00-17:00", false)}
	dates, edited := weekArgs(existing, day(2))
	edited[0] = []string{"09:00-18:00"}

	store := &fakeStore{}
	status := saveWeek(t, store, existing, dates, edited, day(4))
	assert.Equal(t, editor.StatusSaved, status)

	require.Len(t, store.calls, 1)
	call := store.calls[0]
	assert.True(t, call.date.Equal(day(2)))
	require.Len(t, call.old, 1)
	require.Len(t, call.new, 1) // equal counts: a row-wise update
	assert.Equal(t, "a", call.old[0].ID)
	assert.Equal(t, "09:00-18:00", call.new[0].Text())
}

func TestSaveWeekInsertAndReplace(t *testing.T) {
	existing := []model.Shift{stored(t, "a", day(2), "09:00-13:00", false)}
	dates, edited := weekArgs(existing, day(2))
	edited[0] = []string{"09:00-13:00", "14:00-18:00"} // count change on Monday
	edited[1] = []string{"06:00-10:00"}                // brand new Tuesday

	store := &fakeStore{}
	status := saveWeek(t, store, existing, dates, edited, day(4))
	assert.Equal(t, editor.StatusSaved, status)
	require.Len(t, store.calls, 2)

	assert.Len(t, store.calls[0].old, 1)
	assert.Len(t, store.calls[0].new, 2)
	assert.Empty(t, store.calls[1].old) // pure insert
	assert.Len(t, store.calls[1].new, 1)
}

func TestSaveWeekMarksFutureScheduled(t *testing.T) {
	dates, edited := weekArgs(nil, day(2))
	edited[0] = []string{"09:00-13:00"} // Monday, before "today"
	edited[4] = []string{"09:00-13:00"} // Friday, after "today"

	store := &fakeStore{}
	status := saveWeek(t, store, nil, dates, edited, day(3))
	assert.Equal(t, editor.StatusSaved, status)
	require.Len(t, store.calls, 2)
	assert.False(t, store.calls[0].new[0].Scheduled)
	assert.True(t, store.calls[1].new[0].Scheduled)
}

func TestSaveWeekFormattingError(t *testing.T) {
	dates, edited := weekArgs(nil, day(2))
	edited[0] = []string{"9am-5pm"}

	store := &fakeStore{}
	status := saveWeek(t, store, nil, dates, edited, day(4))
	assert.Equal(t, editor.StatusFormatError, status)
	assert.Empty(t, store.calls)
}

func TestSaveWeekOverlapBlocksWrite(t *testing.T) {
	dates, edited := weekArgs(nil, day(2))
	edited[0] = []string{"09:00-13:00", "12:00-17:00"}

	store := &fakeStore{}
	status := saveWeek(t, store, nil, dates, edited, day(4))
	assert.Equal(t, model.StatusOverlap, status)
	assert.Empty(t, store.calls)
}

func TestSaveWeekImpossibleClock(t *testing.T) {
	dates, edited := weekArgs(nil, day(2))
	edited[0] = []string{"25:00-26:00"}

	store := &fakeStore{}
	status := saveWeek(t, store, nil, dates, edited, day(4))
	assert.Equal(t, model.StatusBadTimestamp, status)
	assert.Empty(t, store.calls)
}

func TestScheduledUpdates(t *testing.T) {
	shifts := []model.Shift{
		stored(t, "a", day(2), "09:00-13:00", true),
		stored(t, "b", day(2), "14:00-18:00", true), // same date reported once
		stored(t, "c", day(3), "09:00-13:00", false),
		stored(t, "d", day(5), "09:00-13:00", true), // today: not yet due
		stored(t, "e", day(6), "09:00-13:00", true), // future: expected
	}
	got := editor.ScheduledUpdates(shifts, day(5))
	assert.Equal(t, []string{"2026-03-02"}, got)

	assert.Empty(t, editor.ScheduledUpdates(nil, day(5)))
}
