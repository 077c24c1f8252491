package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/malexander/workhours/internal/editor"
	"github.com/malexander/workhours/internal/manifest"
)

var (
	manifestJob  string
	manifestFile string
	manifestSave bool
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Extract a week of shifts from manifest text",
	Long: `Parse free-form text transcribed from a scanned work schedule and
fill in the matching week's shifts. Reads from stdin unless --file is given;
without --save the extracted week is only previewed.`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestJob, "job", "bus", "Job the manifest belongs to")
	manifestCmd.Flags().StringVar(&manifestFile, "file", "", "Read manifest text from a file instead of stdin")
	manifestCmd.Flags().BoolVar(&manifestSave, "save", false, "Save the extracted shifts")
}

func runManifest(cmd *cobra.Command, args []string) error {
	job := jobFlag(manifestJob)
	now := time.Now()

	var text []byte
	var err error
	if manifestFile != "" {
		text, err = os.ReadFile(manifestFile)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading manifest text: %w", err)
	}

	ctx := context.Background()
	store, logger := openStore(ctx)
	defer store.Close()
	defer logger.Sync()

	shifts, err := store.ReadTable(ctx, job)
	if err != nil {
		return err
	}

	week, err := manifest.Process(string(text), shifts, now)
	if err != nil {
		return err
	}

	fmt.Print(renderWeek(week))
	if !manifestSave {
		fmt.Println("\nDry run; pass --save to store these shifts.")
		return nil
	}

	status, err := editor.SaveWeek(ctx, store, logger, job, week.Dates(), shifts, editedShifts(week), now)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}
