package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subfix/internal/config"
	"subfix/internal/correctors"
	"subfix/internal/journal"
	"subfix/internal/logging"
	"subfix/internal/normalize"
	"subfix/internal/pipeline"
	"subfix/internal/subtitle"
)

func newFixCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath     string
		outputFormat   string
		minDuration    float64
		contextWindow  int
		dryRun         bool
		dictionaryPath string
		enableGrammar  bool
		resume         bool
	)

	cmd := &cobra.Command{
		Use:   "fix <input>",
		Short: "Repair timing and normalize text in subtitle files",
		Long: `Repair timing and normalize text in subtitle files.

The input may be a single .srt or .vtt file, or a directory. Directory
input processes every subtitle file inside it in place and records each
result in the journal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := ctx.ensureLogger().With(logging.String(logging.FieldRunID, runID))

			if !cmd.Flags().Changed("min-duration") {
				minDuration = cfg.Timing.MinDurationSeconds
			}
			if minDuration <= 0 {
				return fmt.Errorf("min duration must be positive, got %v", minDuration)
			}
			if !cmd.Flags().Changed("context-window") {
				contextWindow = cfg.Timing.ContextWindow
			}
			if dictionaryPath == "" {
				dictionaryPath = cfg.Paths.DictionaryPath
			}

			var format subtitle.Format
			if outputFormat != "" {
				parsed, ok := subtitle.ParseFormat(outputFormat)
				if !ok {
					return fmt.Errorf("unknown output format %q (expected srt or vtt)", outputFormat)
				}
				format = parsed
			}

			set, err := buildCorrectorSet(cfg, dictionaryPath, enableGrammar || cfg.Grammar.Enabled)
			if err != nil {
				return err
			}

			opts := pipeline.FileOptions{
				Options: pipeline.Options{
					MinDuration:   time.Duration(minDuration * float64(time.Second)),
					ContextWindow: contextWindow,
					Normalizer:    normalize.New(set, logger),
					Logger:        logger,
				},
				OutputFormat: format,
				DryRun:       dryRun,
			}

			info, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("stat input: %w", err)
			}
			if info.IsDir() {
				if outputPath != "" {
					return fmt.Errorf("-o cannot be used with directory input")
				}
				return runFixBatch(cmd, cfg, logger, runID, args[0], opts, resume)
			}
			return runFixFile(cmd, cfg, logger, runID, args[0], outputPath, opts)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: rewrite input in place)")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "Force output format: srt or vtt")
	cmd.Flags().Float64Var(&minDuration, "min-duration", 0.5, "Minimum cue duration in seconds")
	cmd.Flags().IntVar(&contextWindow, "context-window", 3, "Neighbor cues forwarded as grammar context (-1 disables)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "TOML typo dictionary path")
	cmd.Flags().BoolVar(&enableGrammar, "enable-grammar", false, "Enable the configured grammar correction service")
	cmd.Flags().BoolVar(&resume, "resume", false, "Skip files already repaired according to the journal")
	return cmd
}

func buildCorrectorSet(cfg *config.Config, dictionaryPath string, grammarEnabled bool) (correctors.Set, error) {
	var set correctors.Set
	if dictionaryPath != "" {
		dict, err := correctors.LoadDictionary(dictionaryPath)
		if err != nil {
			return set, fmt.Errorf("load dictionary: %w", err)
		}
		set.Dictionary = dict
	}
	if grammarEnabled {
		if cfg.Grammar.URL == "" {
			return set, fmt.Errorf("grammar correction requested but grammar.url is not configured")
		}
		client, err := correctors.NewGrammarClient(cfg.Grammar.URL,
			correctors.WithLanguage(cfg.Grammar.Language),
			correctors.WithTimeout(cfg.GrammarTimeout()))
		if err != nil {
			return set, fmt.Errorf("grammar client: %w", err)
		}
		set.Grammar = correctors.NewCached(client, cfg.Grammar.CacheSize)
	}
	return set, nil
}

func runFixFile(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, runID, input, output string, opts pipeline.FileOptions) error {
	result, err := pipeline.ProcessFile(cmd.Context(), input, output, opts)
	if !opts.DryRun {
		recordRun(cmd.Context(), cfg, logger, runID, result, err)
	}
	if err != nil {
		return err
	}
	printFixSummary(cmd, result, opts.DryRun)
	return nil
}

func runFixBatch(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, runID, dir string, opts pipeline.FileOptions, resume bool) error {
	lock := flock.New(filepath.Join(dir, ".subfix.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire directory lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another subfix run is active in %s", dir)
	}
	defer func() { _ = lock.Unlock() }()

	files, err := listSubtitleFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no subtitle files found in %s", dir)
	}

	var store *journal.Store
	if !opts.DryRun || resume {
		store, err = journal.Open(cfg.Paths.JournalPath)
		if err != nil {
			logger.Warn("journal unavailable, continuing without it", logging.Error(err))
		} else {
			defer store.Close()
		}
	}
	if resume && store != nil {
		done, err := store.CompletedPaths(cmd.Context())
		if err != nil {
			return fmt.Errorf("read journal for resume: %w", err)
		}
		kept := files[:0]
		for _, path := range files {
			if !done[path] {
				kept = append(kept, path)
			}
		}
		files = kept
	}

	var (
		total    pipeline.Stats
		failures int
	)
	for _, path := range files {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		result, err := pipeline.ProcessFile(cmd.Context(), path, "", opts)
		if store != nil && !opts.DryRun {
			recordRunWith(cmd.Context(), store, logger, runID, result, err)
		}
		if err != nil {
			logger.Error("fix failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err))
			failures++
			continue
		}
		total.OriginalCount += result.Stats.OriginalCount
		total.FinalCount += result.Stats.FinalCount
		total.Adjusted += result.Stats.Adjusted
		total.Merged += result.Stats.Merged
		total.Renumbered += result.Stats.Renumbered
		total.TextChanges += result.Stats.TextChanges
	}

	printBatchSummary(cmd, len(files), failures, total, opts.DryRun)
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(files))
	}
	return nil
}

func listSubtitleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".srt", ".vtt":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// recordRun opens the journal for a single entry; batch mode keeps the store
// open across files and uses recordRunWith instead.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string, result pipeline.FileResult, runErr error) {
	store, err := journal.Open(cfg.Paths.JournalPath)
	if err != nil {
		logger.Warn("journal unavailable, skipping record", logging.Error(err))
		return
	}
	defer store.Close()
	recordRunWith(ctx, store, logger, runID, result, runErr)
}

func recordRunWith(ctx context.Context, store *journal.Store, logger *slog.Logger, runID string, result pipeline.FileResult, runErr error) {
	run := journal.Run{
		RunID:        runID,
		Path:         result.InputPath,
		InputFormat:  string(result.InputFormat),
		OutputFormat: string(result.OutputFormat),
		Status:       journal.StatusCompleted,
		Original:     result.Stats.OriginalCount,
		Final:        result.Stats.FinalCount,
		Adjusted:     result.Stats.Adjusted,
		Merged:       result.Stats.Merged,
		Renumbered:   result.Stats.Renumbered,
		TextChanges:  result.Stats.TextChanges,
		Dropped:      result.Dropped,
	}
	if runErr != nil {
		run.Status = journal.StatusFailed
		run.Error = runErr.Error()
	}
	if _, err := store.RecordRun(ctx, run); err != nil {
		logger.Warn("record journal entry", logging.Error(err))
	}
}
