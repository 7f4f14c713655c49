package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/sells-group/learning-loop/internal/api/client"
)

func outcomesCmd() *cobra.Command {
	outcomesRoot := &cobra.Command{
		Use:   "outcomes",
		Short: "Query recorded sale outcomes",
		Long: "Query the outcomes recorded from marketplace sale and return events,\n" +
			"including prediction accuracy grades and return status.",
	}

	outcomesRoot.AddCommand(
		outcomesListCmd(),
		outcomesGetCmd(),
		outcomesCorrectCmd(),
	)

	return outcomesRoot
}

func outcomesListCmd() *cobra.Command {
	var (
		quality     string
		marketplace string
		returned    string
		limit       int
		offset      int
		orderBy     string
	)

	c := &cobra.Command{
		Use:   "list <org>",
		Short: "List an organization's outcomes",
		Args:  cobra.ExactArgs(1),
		Example: `  loopctl outcomes list org-123
  loopctl outcomes list org-123 --quality poor --returned true
  loopctl outcomes list org-123 --limit 100 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := newClient().ListOutcomes(context.Background(), args[0], &apiclient.ListOutcomesParams{
				Quality:     quality,
				Marketplace: marketplace,
				Returned:    returned,
				Limit:       limit,
				Offset:      offset,
				OrderBy:     orderBy,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Outcomes) == 0 {
				fmt.Println("No outcomes found.")
				return nil
			}
			if err := printOutcomesTable(resp.Outcomes); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d outcomes\n", len(resp.Outcomes), resp.Total)
			return nil
		},
	}

	c.Flags().StringVar(&quality, "quality", "", "filter by quality (excellent, good, fair, poor)")
	c.Flags().StringVar(&marketplace, "marketplace", "", "filter by marketplace")
	c.Flags().StringVar(&returned, "returned", "", "filter by returned flag (true, false)")
	c.Flags().IntVar(&limit, "limit", 0, "number of results")
	c.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	c.Flags().StringVar(&orderBy, "order-by", "", "sort field (sold_at, recorded_at, sold_price)")

	return c
}

func outcomesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <org> <outcome_id>",
		Short: "Show a single outcome",
		Args:  cobra.ExactArgs(2),
		Example: `  loopctl outcomes get org-123 9f1c2a...
  loopctl outcomes get org-123 9f1c2a... --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().GetOutcome(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			return printOutcomeDetail(o)
		},
	}
}

func outcomesCorrectCmd() *cobra.Command {
	var incorrect bool

	c := &cobra.Command{
		Use:   "correct <org> <outcome_id>",
		Short: "Mark an outcome's identification as correct or incorrect",
		Args:  cobra.ExactArgs(2),
		Example: `  loopctl outcomes correct org-123 9f1c2a...
  loopctl outcomes correct org-123 9f1c2a... --incorrect`,
		RunE: func(_ *cobra.Command, args []string) error {
			o, err := newClient().CorrectIdentification(context.Background(), args[0], args[1], !incorrect)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(o)
			}
			fmt.Printf("Outcome %s identification set to %v.\n", o.ID, !incorrect)
			return nil
		},
	}

	c.Flags().BoolVar(&incorrect, "incorrect", false, "mark the identification as incorrect")

	return c
}
