package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/editor"
	"github.com/malexander/workhours/internal/view"
)

var (
	setJob  string
	setDate string
)

var setCmd = &cobra.Command{
	Use:   "set [HH:MM-HH:MM ...]",
	Short: "Replace one day's shifts for a job",
	Long: `Replace the full set of shifts for one job-date. Pass no shift
arguments to clear the date. Dates after today are stored as scheduled.`,
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setJob, "job", "", "Job: bus, hd, or delivery (required)")
	setCmd.Flags().StringVar(&setDate, "date", "", "Date to replace (YYYY-MM-DD, default: today)")
	setCmd.MarkFlagRequired("job")
}

func runSet(cmd *cobra.Command, args []string) error {
	job := jobFlag(setJob)
	now := time.Now()
	date := now
	if setDate != "" {
		date = parseDateFlag(setDate)
	}

	ctx := context.Background()
	store, logger := openStore(ctx)
	defer store.Close()
	defer logger.Sync()

	shifts, err := store.ReadTable(ctx, job)
	if err != nil {
		return err
	}

	week := view.NewWeek(shifts, date)
	weekday := weekdayIndex(date)
	week.SetShifts(weekday, args)

	status, err := editor.SaveWeek(ctx, store, logger, job, week.Dates(), shifts, editedShifts(week), now)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}

// weekdayIndex maps a date to its Monday-based weekday index (0=Monday).
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// editedShifts collects a week's shift strings in the shape SaveWeek expects.
func editedShifts(w *view.Week) [7][]string {
	var edited [7][]string
	for i := 0; i < 7; i++ {
		edited[i] = w.Day(i).Shifts
	}
	return edited
}
