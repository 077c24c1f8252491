package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/aggregate"
	"github.com/malexander/workhours/internal/timecalc"
)

var (
	alertsFrom string
	alertsTo   string
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show hours-of-service notifications",
	Args:  cobra.NoArgs,
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().StringVar(&alertsFrom, "from", "", "Start date (YYYY-MM-DD, default: first recorded shift)")
	alertsCmd.Flags().StringVar(&alertsTo, "to", "", "End date (YYYY-MM-DD, default: last recorded shift)")
}

func runAlerts(cmd *cobra.Command, args []string) error {
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

	start := table.Rows[0].Date
	stop := table.Rows[len(table.Rows)-1].Date
	if alertsFrom != "" {
		start = parseDateFlag(alertsFrom)
	}
	if alertsTo != "" {
		stop = parseDateFlag(alertsTo)
	}

	notes := aggregate.Notifications(table, start, stop)
	if notes == "" {
		fmt.Println("No notifications.")
		return nil
	}
	fmt.Print(notes)
	return nil
}

// parseDateFlag parses a YYYY-MM-DD flag value or exits.
func parseDateFlag(value string) time.Time {
	t, err := time.ParseInLocation(timecalc.DateFormat, value, time.Local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid date %q: use YYYY-MM-DD\n", value)
		os.Exit(1)
	}
	return t
}
