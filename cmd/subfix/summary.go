package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subfix/internal/pipeline"
)

func printFixSummary(cmd *cobra.Command, result pipeline.FileResult, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintf(out, "Dry run: %s would be updated\n", result.OutputPath)
	} else {
		fmt.Fprintf(out, "Updated %s\n", result.OutputPath)
	}

	rows := [][2]string{
		{"Input format", string(result.InputFormat)},
		{"Output format", string(result.OutputFormat)},
		{"Charset", result.Charset},
		{"Cues (original)", strconv.Itoa(result.Stats.OriginalCount)},
		{"Cues (final)", strconv.Itoa(result.Stats.FinalCount)},
		{"Timing adjustments", strconv.Itoa(result.Stats.Adjusted)},
		{"Merges", strconv.Itoa(result.Stats.Merged)},
		{"Renumbered", strconv.Itoa(result.Stats.Renumbered)},
		{"Text changes", strconv.Itoa(result.Stats.TextChanges)},
		{"Dropped blocks", strconv.Itoa(result.Dropped)},
	}
	if useTable(out) {
		tableRows := make([]table.Row, 0, len(rows))
		for _, row := range rows {
			tableRows = append(tableRows, table.Row{row[0], row[1]})
		}
		fmt.Fprintln(out, renderTable(table.Row{"Metric", "Value"}, tableRows, 2))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}

func printBatchSummary(cmd *cobra.Command, files, failures int, total pipeline.Stats, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintf(out, "Dry run over %d files (%d failed)\n", files, failures)
	} else {
		fmt.Fprintf(out, "Processed %d files (%d failed)\n", files, failures)
	}
	fmt.Fprintf(out, "Cues: %d -> %d, adjusted %d, merged %d, text changes %d\n",
		total.OriginalCount, total.FinalCount, total.Adjusted, total.Merged, total.TextChanges)
}
