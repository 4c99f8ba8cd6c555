package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subfix/internal/audioanalysis"
)

func newAnalyzeCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "analyze <file.wav>",
		Short:       "Report level statistics for a PCM WAV file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := audioanalysis.Analyze(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			rows := [][2]string{
				{"Channels", strconv.Itoa(result.Channels)},
				{"Sample rate", fmt.Sprintf("%d Hz", result.SampleRate)},
				{"Bit depth", fmt.Sprintf("%d-bit", result.SampleWidthBytes*8)},
				{"Frames", strconv.FormatInt(result.Frames, 10)},
				{"Duration", fmt.Sprintf("%.3f s", result.DurationSeconds)},
				{"Peak level", formatDBFS(result.MaxDBFS)},
				{"Mean level", formatDBFS(result.MeanDBFS)},
				{"Clipped chunks", fmt.Sprintf("%d of %d", result.ClippedChunks, result.TotalChunks)},
			}
			if useTable(out) {
				tableRows := make([]table.Row, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, table.Row{row[0], row[1]})
				}
				fmt.Fprintln(out, renderTable(table.Row{"Metric", "Value"}, tableRows, 2))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}

func formatDBFS(value *float64) string {
	if value == nil {
		return "silent"
	}
	return fmt.Sprintf("%.2f dBFS", *value)
}
