package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func calibrationCmd() *cobra.Command {
	calibrationRoot := &cobra.Command{
		Use:   "calibration",
		Short: "Trigger and inspect calibration runs",
		Long: "Trigger a manual confidence-weight calibration run across all\n" +
			"research tools, or inspect the history of past runs.",
	}

	calibrationRoot.AddCommand(
		calibrationRunCmd(),
		calibrationHistoryCmd(),
	)

	return calibrationRoot
}

func calibrationRunCmd() *cobra.Command {
	var actorID string

	c := &cobra.Command{
		Use:   "run",
		Short: "Trigger a calibration run",
		Example: `  loopctl calibration run
  loopctl calibration run --actor admin-1 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			results, err := newClient().RunCalibration(context.Background(), actorID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(results)
			}
			if len(results) == 0 {
				fmt.Println("No tools had enough data to calibrate.")
				return nil
			}
			return printCalibrationResultsTable(results)
		},
	}

	c.Flags().StringVar(&actorID, "actor", "", "operator triggering the run")

	return c
}

func calibrationHistoryCmd() *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "List past calibration runs",
		Example: `  loopctl calibration history
  loopctl calibration history --limit 5`,
		RunE: func(_ *cobra.Command, _ []string) error {
			runs, err := newClient().GetCalibrationHistory(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No calibration runs found.")
				return nil
			}
			return printCalibrationRunsTable(runs)
		},
	}

	c.Flags().IntVar(&limit, "limit", 0, "number of runs (default 20)")

	return c
}
