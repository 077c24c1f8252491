package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/view"
)

var (
	weekJob  string
	weekDate string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show one job's shifts for a week",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekJob, "job", "", "Job: bus, hd, or delivery (required)")
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date inside the week (YYYY-MM-DD, default: today)")
	weekCmd.MarkFlagRequired("job")
}

func runWeek(cmd *cobra.Command, args []string) error {
	job := jobFlag(weekJob)
	anchor := time.Now()
	if weekDate != "" {
		anchor = parseDateFlag(weekDate)
	}

	ctx := context.Background()
	store, logger := openStore(ctx)
	defer store.Close()
	defer logger.Sync()

	shifts, err := store.ReadTable(ctx, job)
	if err != nil {
		return err
	}

	fmt.Print(renderWeek(view.NewWeek(shifts, anchor)))
	return nil
}

// renderWeek prints a week one day per line, scheduled shifts marked
// with a trailing *.
func renderWeek(w *view.Week) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week of %s\n", w.Day(0).Date.Format("Monday January 02, 2006"))
	for i := 0; i < 7; i++ {
		day := w.Day(i)
		fmt.Fprintf(&b, "%-16s", day.Date.Format("Mon Jan 02, 2006"))
		empty := true
		for j, shift := range day.Shifts {
			if shift == "" || shift == " " {
				continue
			}
			empty = false
			b.WriteString("  " + shift)
			if j < len(day.Scheduled) && day.Scheduled[j] {
				b.WriteString("*")
			}
		}
		if empty {
			b.WriteString("  -")
		} else if day.Total != "" {
			fmt.Fprintf(&b, "  (total %s)", day.Total)
		}
		b.WriteString("\n")
	}
	return b.String()
}
