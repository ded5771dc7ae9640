package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/gridsync"
	"github.com/xuri/excelize/v2"
)

func main() {
	count := flag.Int("count", 10000, "Number of snapshot rows to generate")
	drift := flag.Int("drift", 100, "Number of rows whose cells differ from the sheet")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "gridsync_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	workbook := filepath.Join(benchDir, "bench.xlsx")
	snapshot := filepath.Join(benchDir, "export.csv")

	fmt.Printf("Generating %d rows in %s...\n", *count, benchDir)
	startGen := time.Now()

	var sb strings.Builder
	sb.WriteString("ID,Name,Score,Active\n")
	for i := 0; i < *count; i++ {
		status := "YES"
		if i%2 == 0 {
			status = "NO"
		}
		fmt.Fprintf(&sb, "row-%d,Name %d,%d,%s\n", i, i, i%100, status)
	}
	if err := os.WriteFile(snapshot, []byte(sb.String()), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// Seed the workbook with just the header row; without it every
	// snapshot column would be unknown and dropped.
	f := excelize.NewFile()
	for i, h := range []string{"ID", "Name", "Score", "Active"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			panic(err)
		}
	}
	if err := f.SaveAs(workbook); err != nil {
		panic(err)
	}
	f.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	// Run 1: Cold. Every snapshot row is an append into the header-only workbook.
	fmt.Println("Running Sync (Run 1 - Cold)...")
	start := time.Now()
	plan, err := gridsync.Sync(ctx, workbook, snapshot, "ID",
		gridsync.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}
	coldDuration := time.Since(start)
	fmt.Printf("Run 1 Result: %v (appends: %d, cells: %d)\n", coldDuration, len(plan.Appends), plan.CellCount())

	// Drift a slice of rows so the warm run has real updates to compute.
	sb.Reset()
	sb.WriteString("ID,Name,Score,Active\n")
	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("Name %d", i)
		if i < *drift {
			name += " bis"
		}
		status := "YES"
		if i%2 == 0 {
			status = "NO"
		}
		fmt.Fprintf(&sb, "row-%d,%s,%d,%s\n", i, name, i%100, status)
	}
	if err := os.WriteFile(snapshot, []byte(sb.String()), 0644); err != nil {
		panic(err)
	}

	// Run 2: Warm. The diff dominates; only drifted cells are written.
	fmt.Println("Running Sync (Run 2 - Warm)...")
	start = time.Now()
	plan, err = gridsync.Sync(ctx, workbook, snapshot, "ID",
		gridsync.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}
	warmDuration := time.Since(start)
	fmt.Printf("Run 2 Result: %v (updates: %d, cells: %d)\n", warmDuration, len(plan.Updates), plan.CellCount())

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d rows, %d drifted):\n", *count, *drift)
	fmt.Printf("  Cold: %v\n", coldDuration)
	fmt.Printf("  Warm: %v\n", warmDuration)
	fmt.Printf("--------------------------------------------------\n")
}
