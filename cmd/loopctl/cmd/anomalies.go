package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/sells-group/learning-loop/internal/api/client"
)

func anomaliesCmd() *cobra.Command {
	anomaliesRoot := &cobra.Command{
		Use:   "anomalies",
		Short: "View and resolve detected anomalies",
		Long: "View research-quality anomalies detected by the daily sweep\n" +
			"(price deviation, slow sales, category misidentification) and\n" +
			"mark them resolved once addressed.",
	}

	anomaliesRoot.AddCommand(
		anomaliesListCmd(),
		anomaliesAllCmd(),
		anomaliesResolveCmd(),
	)

	return anomaliesRoot
}

func anomalyListFlags(c *cobra.Command, params *apiclient.ListAnomaliesParams) {
	c.Flags().StringVar(&params.Type, "type", "", "filter by anomaly type")
	c.Flags().StringVar(&params.Severity, "severity", "", "filter by severity (info, warning, critical)")
	c.Flags().BoolVar(&params.IncludeResolved, "include-resolved", false, "include resolved anomalies")
	c.Flags().IntVar(&params.Limit, "limit", 0, "number of results")
}

func anomaliesListCmd() *cobra.Command {
	params := &apiclient.ListAnomaliesParams{}

	c := &cobra.Command{
		Use:   "list <org>",
		Short: "List an organization's anomalies",
		Args:  cobra.ExactArgs(1),
		Example: `  loopctl anomalies list org-123
  loopctl anomalies list org-123 --severity critical --include-resolved`,
		RunE: func(_ *cobra.Command, args []string) error {
			anomalies, err := newClient().ListAnomalies(context.Background(), args[0], params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(anomalies)
			}
			if len(anomalies) == 0 {
				fmt.Println("No anomalies found.")
				return nil
			}
			return printAnomaliesTable(anomalies)
		},
	}

	anomalyListFlags(c, params)

	return c
}

func anomaliesAllCmd() *cobra.Command {
	params := &apiclient.ListAnomaliesParams{}

	c := &cobra.Command{
		Use:   "all",
		Short: "List anomalies across all organizations",
		Example: `  loopctl anomalies all
  loopctl anomalies all --type price_deviation --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			anomalies, err := newClient().ListAllAnomalies(context.Background(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(anomalies)
			}
			if len(anomalies) == 0 {
				fmt.Println("No anomalies found.")
				return nil
			}
			return printAnomaliesTable(anomalies)
		},
	}

	anomalyListFlags(c, params)

	return c
}

func anomaliesResolveCmd() *cobra.Command {
	var (
		notes      string
		resolvedBy string
	)

	c := &cobra.Command{
		Use:   "resolve <org> <anomaly_id>",
		Short: "Mark an anomaly as resolved",
		Args:  cobra.ExactArgs(2),
		Example: `  loopctl anomalies resolve org-123 4a7b...
  loopctl anomalies resolve org-123 4a7b... --notes "comps refreshed" --by ops`,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().ResolveAnomaly(context.Background(), args[0], args[1], notes, resolvedBy)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			fmt.Printf("Anomaly %s resolved.\n", a.ID)
			return nil
		},
	}

	c.Flags().StringVar(&notes, "notes", "", "resolution notes")
	c.Flags().StringVar(&resolvedBy, "by", "", "operator resolving the anomaly")

	return c
}
