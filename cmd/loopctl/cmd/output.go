package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/sells-group/learning-loop/internal/api/client"
	domain "github.com/sells-group/learning-loop/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOutcomesTable(outcomes []domain.Outcome) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tITEM\tSOLD\tQUALITY\tRATIO\tRETURNED\tSOLD AT\n")
	for i := range outcomes {
		o := &outcomes[i]
		ratio := "-"
		if o.PriceAccuracyRatio != nil {
			ratio = fmt.Sprintf("%.3f", *o.PriceAccuracyRatio)
		}
		tw.writef("%s\t%s\t$%.2f\t%s\t%s\t%v\t%s\n",
			o.ID,
			o.ItemID,
			o.SoldPrice,
			o.Quality,
			ratio,
			o.WasReturned,
			o.SoldAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printOutcomeDetail(o *domain.Outcome) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Org:\t%s\n", o.OrgID)
	tw.writef("Item:\t%s\n", o.ItemID)
	tw.writef("Listing:\t%s\n", o.ListingID)
	tw.writef("Listed Price:\t$%.2f\n", o.ListedPrice)
	tw.writef("Sold Price:\t$%.2f\n", o.SoldPrice)
	if o.PredictedTarget != nil {
		tw.writef("Predicted Target:\t$%.2f\n", *o.PredictedTarget)
	}
	if o.PriceAccuracyRatio != nil {
		tw.writef("Accuracy Ratio:\t%.3f\n", *o.PriceAccuracyRatio)
	}
	tw.writef("Quality:\t%s\n", o.Quality)
	if o.DaysToSell != nil {
		tw.writef("Days To Sell:\t%d\n", *o.DaysToSell)
	}
	tw.writef("Marketplace:\t%s\n", o.Marketplace)
	tw.writef("Returned:\t%v\n", o.WasReturned)
	if o.ReturnReason != "" {
		tw.writef("Return Reason:\t%s\n", o.ReturnReason)
	}
	tw.writef("Sold At:\t%s\n", o.SoldAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printEffectivenessTable(tools []apiclient.ToolEffectiveness) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TOOL\tUSES\tCONFIDENCE\tACCURACY\tDEVIATION\tID RATE\tWEIGHT\n")
	for i := range tools {
		te := &tools[i]
		tw.writef("%s\t%d\t%.2f\t%.2f\t%.3f\t%.2f\t%.2f\n",
			te.ToolType,
			te.TotalUses,
			te.AvgConfidence,
			te.AvgAccuracy,
			te.AvgPriceDeviation,
			te.IdentificationRate,
			te.CurrentWeight,
		)
	}
	return tw.finish()
}

func printTrendTable(periods []apiclient.ToolEffectiveness) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PERIOD\tUSES\tCONFIDENCE\tACCURACY\tDEVIATION\tWEIGHT\n")
	for i := range periods {
		te := &periods[i]
		tw.writef("%s\t%d\t%.2f\t%.2f\t%.3f\t%.2f\n",
			te.PeriodStart.Format("2006-01"),
			te.TotalUses,
			te.AvgConfidence,
			te.AvgAccuracy,
			te.AvgPriceDeviation,
			te.CurrentWeight,
		)
	}
	return tw.finish()
}

func printAnomaliesTable(anomalies []domain.Anomaly) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tORG\tTYPE\tSEVERITY\tRESOLVED\tDETECTED\tDESCRIPTION\n")
	for i := range anomalies {
		a := &anomalies[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\t%s\n",
			a.ID,
			a.OrgID,
			a.Type,
			a.Severity,
			a.Resolved,
			a.DetectedAt.Format("2006-01-02"),
			truncate(a.Description, 50),
		)
	}
	return tw.finish()
}

func printCalibrationResultsTable(results []domain.CalibrationResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TOOL\tSCORE\tPOINTS\tPREV\tNEW\tREASONING\n")
	for i := range results {
		r := &results[i]
		tw.writef("%s\t%.2f\t%d\t%.2f\t%.2f\t%s\n",
			r.ToolType,
			r.CalibrationScore,
			r.DataPoints,
			r.PreviousWeight,
			r.NewWeight,
			truncate(r.Reasoning, 60),
		)
	}
	return tw.finish()
}

func printCalibrationRunsTable(runs []domain.CalibrationRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCALIBRATED\tTRIGGER\tACTOR\tLOOKBACK\tTOOLS\n")
	for i := range runs {
		r := &runs[i]
		actor := r.ActorID
		if actor == "" {
			actor = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t%dd\t%d\n",
			r.ID,
			r.CalibratedAt.Format("2006-01-02 15:04:05"),
			r.Trigger,
			actor,
			r.LookbackDays,
			len(r.Results),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		errText := truncate(r.ErrorText, 40)
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			errText,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
