package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/gridsync"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the snapshot and re-sync on change",
	Long: `Run an initial sync, then keep watching the CSV snapshot path (or glob)
and re-sync the workbook whenever a matching file is created or modified.
Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := resolveJobs()
		if err != nil {
			fatal("Failed to resolve jobs", err)
		}
		if len(jobs) != 1 {
			fatal("Watch mode", fmt.Errorf("expected exactly one job, got %d", len(jobs)))
		}
		job := jobs[0]

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := gridsync.New(job.Workbook, job.Snapshot, job.Key,
			gridsync.WithSheet(job.Sheet),
			gridsync.WithAutoCreate(autoCreate),
			gridsync.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize gridsync", err)
		}
		defer svc.Close()

		plan, err := svc.Sync(ctx)
		if err != nil {
			fatal("Initial sync failed", err)
		}
		printPlan(job.Name, plan)

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", job.Snapshot)
		for {
			select {
			case <-ctx.Done():
				fmt.Println("Stopping.")
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				slog.Debug("Snapshot changed", "path", ev.Path, "type", ev.Type)
				plan, err := svc.Sync(ctx)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: sync failed: %v\n", err)
					continue
				}
				printPlan(job.Name, plan)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&autoCreate, "auto-create", false, "Create the workbook if it does not exist")
}
