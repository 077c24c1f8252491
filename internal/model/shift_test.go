package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malexander/workhours/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mustShift(t *testing.T, date time.Time, text string) model.Shift {
	t.Helper()
	s, err := model.ParseShiftText(date, text)
	require.NoError(t, err)
	return s
}

func TestParseShiftText(t *testing.T) {
	s := mustShift(t, day(2), "09:00-17:30")
	assert.Equal(t, "09:00-17:30", s.Text())
	assert.Equal(t, 8*time.Hour+30*time.Minute, s.Duration())
	assert.True(t, s.Date.Equal(day(2)))
}

func TestParseShiftTextRejectsBadShapes(t *testing.T) {
	for _, text := range []string{"9:00-17:00", "09:00–17:00", "09:00-17:00 ", "0900-1700", "09:00"} {
		_, err := model.ParseShiftText(day(2), text)
		assert.ErrorIs(t, err, model.ErrFormat, "text %q", text)
	}
}

func TestParseShiftTextRejectsImpossibleClock(t *testing.T) {
	_, err := model.ParseShiftText(day(2), "25:00-26:00")
	var cerr *model.ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, model.StatusBadTimestamp, cerr.Status)
}

func TestCheckDay(t *testing.T) {
	tests := []struct {
		name   string
		shifts []string
		status string
	}{
		{"single shift ok", []string{"09:00-17:00"}, ""},
		{"two shifts ok", []string{"09:00-13:00", "14:00-18:00"}, ""},
		{"zero length", []string{"09:00-09:00"}, model.StatusBadOrder},
		{"inverted", []string{"17:00-09:00"}, model.StatusBadOrder},
		{"overlapping", []string{"09:00-13:00", "12:00-17:00"}, model.StatusOverlap},
		{"back to back", []string{"09:00-13:00", "13:00-17:00"}, model.StatusOverlap},
		{"duplicate starts", []string{"09:00-13:00", "09:00-17:00"}, model.StatusDuplicateStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var shifts []model.Shift
			for _, text := range tt.shifts {
				shifts = append(shifts, mustShift(t, day(2), text))
			}
			err := model.CheckDay(shifts)
			if tt.status == "" {
				assert.NoError(t, err)
				return
			}
			var cerr *model.ConsistencyError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.status, cerr.Status)
		})
	}
}

func TestCheckDayDateMismatch(t *testing.T) {
	s := mustShift(t, day(2), "09:00-17:00")
	s.Date = day(3)
	err := model.CheckDay([]model.Shift{s})
	var cerr *model.ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, model.StatusDateMismatch, cerr.Status)
}

func TestByDate(t *testing.T) {
	shifts := []model.Shift{
		mustShift(t, day(3), "14:00-18:00"),
		mustShift(t, day(2), "09:00-13:00"),
		mustShift(t, day(3), "06:00-10:00"),
	}
	got := model.ByDate(shifts, day(3))
	require.Len(t, got, 2)
	assert.Equal(t, "06:00-10:00", got[0].Text()) // ordered by start
	assert.Equal(t, "14:00-18:00", got[1].Text())
	assert.Empty(t, model.ByDate(shifts, day(4)))
}

func TestSpan(t *testing.T) {
	bus := []model.Shift{mustShift(t, day(5), "09:00-13:00")}
	hd := []model.Shift{mustShift(t, day(2), "09:00-13:00"), mustShift(t, day(9), "09:00-13:00")}
	min, max, ok := model.Span(bus, hd, nil)
	require.True(t, ok)
	assert.True(t, min.Equal(day(2)))
	assert.True(t, max.Equal(day(9)))

	_, _, ok = model.Span(nil, nil, nil)
	assert.False(t, ok)
}

func TestJobClassification(t *testing.T) {
	assert.True(t, model.Bus.Driving())
	assert.False(t, model.HomeDepot.Driving())
	assert.True(t, model.Delivery.Driving())
	assert.Equal(t, "HD_hours", model.HomeDepot.Table())

	job, err := model.ParseJob("delivery")
	require.NoError(t, err)
	assert.Equal(t, model.Delivery, job)
	_, err = model.ParseJob("train")
	assert.Error(t, err)
}
