package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"subfix/internal/charset"
	"subfix/internal/subtitle"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "convert <input> <output>",
		Short:       "Convert between SRT and WebVTT without repairing",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			outFormat, ok := subtitle.ParseFormat(ext)
			if !ok {
				return fmt.Errorf("cannot infer output format from %q (use a .srt or .vtt extension)", output)
			}

			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			decoded, charsetName, err := charset.Decode(raw)
			if err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			inFormat := subtitle.DetectFormat(input, decoded)
			parsed, err := subtitle.Parse(string(decoded), inFormat)
			if err != nil {
				return fmt.Errorf("parse %s: %w", input, err)
			}

			rendered := subtitle.Render(parsed.Cues, outFormat)
			if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s (%s, %s) to %s (%d cues)\n",
				input, inFormat, charsetName, output, len(parsed.Cues))
			return nil
		},
	}
}
