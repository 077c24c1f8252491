package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/editor"
	"github.com/malexander/workhours/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List past dates still waiting on actual shift times",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()
	ctx := context.Background()
	store, logger := openStore(ctx)
	defer store.Close()
	defer logger.Sync()

	bus, hd, delivery := readAllJobs(ctx, store)

	any := printUpdates(model.Bus, bus, now)
	any = printUpdates(model.HomeDepot, hd, now) || any
	any = printUpdates(model.Delivery, delivery, now) || any
	if !any {
		fmt.Println("All shift records are up to date.")
	}
	return nil
}

// printUpdates lists a job's past dates still flagged scheduled and
// reports whether there were any.
func printUpdates(job model.Job, shifts []model.Shift, now time.Time) bool {
	dates := editor.ScheduledUpdates(shifts, now)
	if len(dates) == 0 {
		return false
	}
	fmt.Printf("%s hours need to be updated:\n", job.Label())
	for _, d := range dates {
		fmt.Println(d)
	}
	return true
}
