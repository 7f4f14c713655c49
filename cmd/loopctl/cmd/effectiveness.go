package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func effectivenessCmd() *cobra.Command {
	effRoot := &cobra.Command{
		Use:   "effectiveness",
		Short: "View tool effectiveness aggregates",
		Long: "View per-tool effectiveness for an organization scope: usage counts,\n" +
			"confidence versus realized accuracy, and calibration weights. Use the\n" +
			"org id \"global\" for the cross-organization scope.",
	}

	effRoot.AddCommand(
		effectivenessShowCmd(),
		effectivenessTrendCmd(),
	)

	return effRoot
}

func effectivenessShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <org>",
		Short: "Show current-month effectiveness per tool",
		Args:  cobra.ExactArgs(1),
		Example: `  loopctl effectiveness show org-123
  loopctl effectiveness show global --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := newClient().GetEffectiveness(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Tools) == 0 {
				fmt.Printf("No effectiveness data for %q this month.\n", args[0])
				return nil
			}
			return printEffectivenessTable(resp.Tools)
		},
	}
}

func effectivenessTrendCmd() *cobra.Command {
	var months int

	c := &cobra.Command{
		Use:   "trend <org> <tool>",
		Short: "Show a tool's month-over-month trend",
		Args:  cobra.ExactArgs(2),
		Example: `  loopctl effectiveness trend org-123 market_search
  loopctl effectiveness trend global price_comps --months 12`,
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := newClient().GetEffectivenessTrend(context.Background(), args[0], args[1], months)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Periods) == 0 {
				fmt.Printf("No trend data for %s in %q.\n", args[1], args[0])
				return nil
			}
			return printTrendTable(resp.Periods)
		},
	}

	c.Flags().IntVar(&months, "months", 0, "number of months (default 6)")

	return c
}
