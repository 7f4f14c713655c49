// Package cmd implements the CLI commands for the learning-loop service.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "learning-loop",
	Short: "Feedback engine for marketplace listing outcomes",
	Long:  "An API-first service that records sale and return outcomes for marketplace listings, aggregates per-tool research effectiveness, recalibrates tool confidence weights, and flags anomalous patterns.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
