package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/gridsync"
	"github.com/aretw0/gridsync/pkg/core"
	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the pending writes without applying them",
	Long: `Compute the cell writes that a sync would perform and print a summary.
Nothing is written to the workbook.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := resolveJobs()
		if err != nil {
			fatal("Failed to resolve jobs", err)
		}

		ctx := context.Background()
		for _, job := range jobs {
			plan, err := gridsync.Plan(ctx, job.Workbook, job.Snapshot, job.Key,
				gridsync.WithSheet(job.Sheet),
				gridsync.WithLogger(slog.Default()),
			)
			if err != nil {
				fatal(fmt.Sprintf("Plan failed for %s", job.Name), err)
			}

			printPlan(job.Name, plan)
		}
	},
}

func printPlan(name string, plan *core.Plan) {
	if plan.Empty() {
		fmt.Printf("%s: in sync, nothing to do\n", name)
		printDiagnostics(plan.Diagnostics)
		return
	}
	fmt.Printf("%s: %d appends, %d row updates (%d cells)\n",
		name, len(plan.Appends), len(plan.Updates), plan.CellCount())
	for _, p := range plan.Appends {
		fmt.Printf("  + row %d (%d cells)\n", p.Row, len(p.Cells))
	}
	for _, p := range plan.Updates {
		if len(p.Cells) == 0 {
			continue
		}
		fmt.Printf("  ~ row %d (%d cells)\n", p.Row, len(p.Cells))
	}
	printDiagnostics(plan.Diagnostics)
}

func printDiagnostics(d core.Diagnostics) {
	if d.SkippedRows > 0 {
		fmt.Printf("  ! %d snapshot rows skipped (empty key)\n", d.SkippedRows)
	}
	if d.InvalidDates > 0 {
		fmt.Printf("  ! %d date-shaped values failed validation and were kept as-is\n", d.InvalidDates)
	}
	if d.DroppedColumns > 0 {
		fmt.Printf("  ! %d cells dropped (column not on sheet)\n", d.DroppedColumns)
	}
	if d.SnapshotKeyMissing {
		fmt.Println("  ! key column missing from snapshot header")
	}
	if d.SheetKeyMissing {
		fmt.Println("  ! key column missing from sheet header")
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
