package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/gridsync/internal/platform"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	snapshot string
	workbook string
	keyCol   string
	sheet    string
	cfgPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gridsync",
	Short: "Reconcile CSV exports into spreadsheets with minimal cell writes",
	Long: `Gridsync treats a spreadsheet as a keyed table and a CSV export as its
source of truth. It computes the minimal set of cell writes (appends for
new keys, updates for changed cells) and applies only those.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveJobs turns the CLI flags into a job list. Explicit --snapshot and
// --workbook flags define a single ad-hoc job; otherwise the config file is
// loaded (from --config, or found by walking up from the working directory).
func resolveJobs() ([]platform.Job, error) {
	if snapshot != "" && workbook != "" {
		if keyCol == "" {
			return nil, fmt.Errorf("--key is required with --snapshot/--workbook")
		}
		return []platform.Job{{
			Name:     workbook,
			Snapshot: snapshot,
			Workbook: workbook,
			Sheet:    sheet,
			Key:      keyCol,
		}}, nil
	}

	path := cfgPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = platform.FindConfig(cwd)
		if err != nil {
			return nil, fmt.Errorf("no --snapshot/--workbook given and %w", err)
		}
	}

	cfg, err := platform.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.Jobs, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&snapshot, "snapshot", "", "CSV snapshot path or glob")
	rootCmd.PersistentFlags().StringVar(&workbook, "workbook", "", "XLSX workbook path")
	rootCmd.PersistentFlags().StringVar(&keyCol, "key", "", "Key column header")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Worksheet name (defaults to the first sheet)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to a gridsync.yaml job file")
}
