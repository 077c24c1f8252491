package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/aggregate"
	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/report"
	"github.com/malexander/workhours/internal/timecalc"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the 8-day report: a week back through a week ahead",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	return printReport(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7), now)
}

// printReport renders the report block plus notifications for the given
// range, clamped to the span the rolling-window table actually covers.
func printReport(start, stop, now time.Time) error {
	ctx := context.Background()
	store, logger := openStore(ctx)
	defer store.Close()
	defer logger.Sync()

	bus, hd, delivery := readAllJobs(ctx, store)
	table := aggregate.BuildWindow(bus, hd, delivery)
	if len(table.Rows) == 0 {
		fmt.Println("No shifts recorded.")
		return nil
	}

	start, stop = clampToTable(start, stop, table)
	if timecalc.StartOfDay(stop).Before(timecalc.StartOfDay(start)) {
		fmt.Println("No shifts recorded in the requested range.")
		return nil
	}

	text, err := report.Build(bus, hd, delivery, start, stop, table, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(text)

	if notes := aggregate.Notifications(table, start, stop); notes != "" {
		fmt.Println()
		fmt.Print(notes)
	}
	reportScheduledUpdates(bus, hd, delivery, now)
	return nil
}

// clampToTable narrows [start, stop] so every report date has a
// rolling-window row; the report range must be a subset of the table span.
func clampToTable(start, stop time.Time, table *aggregate.WindowTable) (time.Time, time.Time) {
	first := table.Rows[0].Date
	last := table.Rows[len(table.Rows)-1].Date
	if timecalc.StartOfDay(start).Before(first) {
		start = first
	}
	if timecalc.StartOfDay(stop).After(last) {
		stop = last
	}
	return start, stop
}

// reportScheduledUpdates prints reminder lines for past dates still
// flagged as scheduled.
func reportScheduledUpdates(bus, hd, delivery []model.Shift, now time.Time) {
	printUpdates(model.Bus, bus, now)
	printUpdates(model.HomeDepot, hd, now)
	printUpdates(model.Delivery, delivery, now)
}
