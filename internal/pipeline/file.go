package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"subfix/internal/charset"
	"subfix/internal/logging"
	"subfix/internal/subtitle"
)

// FileOptions extends Options with file-level behavior.
type FileOptions struct {
	Options
	// OutputFormat forces the output syntax. When empty the format is taken
	// from the output path's extension, then from the input format.
	OutputFormat subtitle.Format
	// DryRun processes and reports without writing the output file.
	DryRun bool
}

// FileResult reports what ProcessFile did to one file.
type FileResult struct {
	InputPath    string
	OutputPath   string
	InputFormat  subtitle.Format
	OutputFormat subtitle.Format
	Charset      string
	Dropped      int
	Stats        Stats
}

// ProcessFile repairs one subtitle file: decode, parse, process, render,
// write. An empty output path rewrites the input in place. Defective cue
// blocks are dropped and counted; only file I/O and fully unparsable content
// are fatal.
func ProcessFile(ctx context.Context, inPath, outPath string, opts FileOptions) (FileResult, error) {
	logger := logging.NewComponentLogger(opts.Logger, "pipeline")
	if outPath == "" {
		outPath = inPath
	}
	result := FileResult{InputPath: inPath, OutputPath: outPath}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return result, fmt.Errorf("read subtitle file: %w", err)
	}
	decoded, charsetName, err := charset.Decode(raw)
	if err != nil {
		return result, fmt.Errorf("decode subtitle file: %w", err)
	}
	result.Charset = charsetName

	result.InputFormat = subtitle.DetectFormat(inPath, decoded)
	result.OutputFormat = resolveOutputFormat(opts.OutputFormat, outPath, result.InputFormat)

	parsed, err := subtitle.Parse(string(decoded), result.InputFormat)
	if err != nil {
		return result, fmt.Errorf("parse %s: %w", inPath, err)
	}
	result.Dropped = parsed.Dropped
	if parsed.Dropped > 0 {
		logger.Warn("dropped defective cue blocks",
			logging.String(logging.FieldFile, inPath),
			logging.Int("dropped", parsed.Dropped))
	}

	cues, stats := Process(ctx, parsed.Cues, opts.Options)
	result.Stats = stats

	if opts.DryRun {
		logger.Info("dry run, skipping write",
			logging.String(logging.FieldFile, outPath))
		return result, nil
	}

	rendered := subtitle.Render(cues, result.OutputFormat)
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return result, fmt.Errorf("write subtitle file: %w", err)
	}
	logger.Info("wrote repaired subtitles",
		logging.String(logging.FieldFile, outPath),
		logging.String(logging.FieldFormat, string(result.OutputFormat)),
		logging.Int("cues", stats.FinalCount))
	return result, nil
}

// resolveOutputFormat applies the precedence explicit flag, output extension,
// input format.
func resolveOutputFormat(explicit subtitle.Format, outPath string, input subtitle.Format) subtitle.Format {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(outPath)
	if len(ext) > 1 {
		if format, ok := subtitle.ParseFormat(ext[1:]); ok {
			return format
		}
	}
	return input
}
