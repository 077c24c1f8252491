package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malexander/workhours/internal/aggregate"
	"github.com/malexander/workhours/internal/model"
)

// fixture spans 2026-03-02 through 2026-03-13 with a fully idle day in the
// middle and uneven activity across the three jobs.
func windowFixture(t *testing.T) (bus, hd, delivery []model.Shift) {
	t.Helper()
	bus = []model.Shift{
		shift(t, day(2), "06:00-10:00", false),
		shift(t, day(3), "06:00-10:00", false),
		shift(t, day(3), "14:00-18:00", false),
		shift(t, day(5), "06:00-12:00", false),
		shift(t, day(9), "06:00-10:00", false),
		shift(t, day(13), "06:00-10:00", true),
	}
	hd = []model.Shift{
		shift(t, day(2), "11:00-16:00", false),
		shift(t, day(4), "10:00-19:00", false),
		shift(t, day(10), "10:00-14:00", false),
	}
	delivery = []model.Shift{
		shift(t, day(5), "13:00-19:00", false),
		shift(t, day(12), "09:00-17:00", false),
	}
	return bus, hd, delivery
}

func TestBuildWindowContiguous(t *testing.T) {
	table := aggregate.BuildWindow(windowFixture(t))
	require.Len(t, table.Rows, 12) // 2026-03-02 .. 2026-03-13 inclusive

	for i, row := range table.Rows {
		assert.True(t, row.Date.Equal(day(2+i)), "row %d date", i)
	}

	// 2026-03-06 has no shifts anywhere: present with zero totals.
	row, ok := table.Row(day(6))
	require.True(t, ok)
	assert.Zero(t, row.DailyTotal)
	assert.Zero(t, row.DriveTotal)
	assert.NotZero(t, row.EightDay) // trailing days still contribute
}

func TestBuildWindowRowIdentities(t *testing.T) {
	table := aggregate.BuildWindow(windowFixture(t))
	for _, row := range table.Rows {
		date := row.Date.Format("2006-01-02")
		assert.Equal(t, row.Bus+row.HomeDepot+row.Delivery, row.DailyTotal, "daily total on %s", date)
		assert.Equal(t, row.Bus+row.Delivery, row.DriveTotal, "drive total on %s", date)
	}
}

// The sliding accumulator must agree with direct summation of the
// trailing 8 (or fewer, at the start) daily totals for every row.
func TestEightDayWindowMatchesDirectSum(t *testing.T) {
	table := aggregate.BuildWindow(windowFixture(t))
	for i, row := range table.Rows {
		var direct time.Duration
		for j := i - 7; j <= i; j++ {
			if j < 0 {
				continue
			}
			direct += table.Rows[j].DailyTotal
		}
		assert.Equal(t, direct, row.EightDay, "row %d (%s)", i, row.Date.Format("2006-01-02"))
	}
}

func TestBuildWindowEmpty(t *testing.T) {
	table := aggregate.BuildWindow(nil, nil, nil)
	assert.Empty(t, table.Rows)
	_, ok := table.Row(day(2))
	assert.False(t, ok)
}

func TestWindowSlice(t *testing.T) {
	table := aggregate.BuildWindow(windowFixture(t))
	rows := table.Slice(day(4), day(6))
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.Equal(day(4)))
	assert.True(t, rows[2].Date.Equal(day(6)))
}
