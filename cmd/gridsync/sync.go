package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/gridsync"
	"github.com/spf13/cobra"
)

var autoCreate bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Apply the pending writes to the workbook",
	Long: `Compute the cell writes needed to bring the workbook in line with the
CSV snapshot and apply them. Rows whose key is new are appended; rows whose
cells drifted are patched in place. Untouched cells keep their formatting.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := resolveJobs()
		if err != nil {
			fatal("Failed to resolve jobs", err)
		}

		ctx := context.Background()
		failed := 0
		for _, job := range jobs {
			plan, err := gridsync.Sync(ctx, job.Workbook, job.Snapshot, job.Key,
				gridsync.WithSheet(job.Sheet),
				gridsync.WithAutoCreate(autoCreate),
				gridsync.WithLogger(slog.Default()),
			)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: sync failed for %s: %v\n", job.Name, err)
				failed++
				continue
			}

			printPlan(job.Name, plan)
		}

		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&autoCreate, "auto-create", false, "Create the workbook if it does not exist")
}
