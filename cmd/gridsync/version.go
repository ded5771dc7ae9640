package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/gridsync"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gridsync",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridsync version %s\n", strings.TrimSpace(gridsync.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
