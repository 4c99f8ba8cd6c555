package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"subfix/internal/language"
	"subfix/internal/logging"
	"subfix/internal/normalize"
	"subfix/internal/reconcile"
	"subfix/internal/subtitle"
)

// DefaultContextWindow is the neighbor radius used for grammar context when
// none is configured.
const DefaultContextWindow = 3

// Options configures one processing run.
type Options struct {
	// MinDuration is the cue duration floor; zero selects the reconciler
	// default.
	MinDuration time.Duration
	// ContextWindow is the neighbor radius for grammar context; zero selects
	// DefaultContextWindow, negative disables context entirely.
	ContextWindow int
	// Normalizer rewrites cue text. Nil skips normalization.
	Normalizer *normalize.Normalizer
	Logger     *slog.Logger
}

// Process normalizes every cue and then reconciles timing, in that order.
// Context windows are built from the neighbors' original text so that the
// per-cue results do not depend on processing order. Text produced by merging
// is concatenated as-is and never re-normalized.
func Process(ctx context.Context, cues []subtitle.Cue, opts Options) ([]subtitle.Cue, Stats) {
	logger := logging.NewComponentLogger(opts.Logger, "pipeline")
	stats := Stats{OriginalCount: len(cues)}

	if opts.Normalizer != nil {
		radius := opts.ContextWindow
		if radius == 0 {
			radius = DefaultContextWindow
		}
		originals := make([]string, len(cues))
		for i, cue := range cues {
			originals[i] = cue.Text
		}
		for i := range cues {
			window := contextWindow(originals, i, radius)
			script := language.Detect(cues[i].Text)
			text, changed := opts.Normalizer.Normalize(ctx, cues[i].Text, script, window)
			if changed {
				stats.TextChanges++
				cues[i].Text = text
			}
		}
	}

	out, timing := reconcile.Run(cues, opts.MinDuration)
	stats.Adjusted = timing.Adjusted
	stats.Merged = timing.Merged
	stats.Renumbered = timing.Renumbered
	stats.FinalCount = len(out)

	logger.Debug("processing finished",
		logging.Int("original", stats.OriginalCount),
		logging.Int("final", stats.FinalCount),
		logging.Int("adjusted", stats.Adjusted),
		logging.Int("merged", stats.Merged),
		logging.Int("text_changes", stats.TextChanges))
	return out, stats
}

// contextWindow joins the original text of up to radius neighbors on each
// side of position i, excluding the cue itself.
func contextWindow(originals []string, i, radius int) string {
	if radius < 0 {
		return ""
	}
	lo := i - radius
	if lo < 0 {
		lo = 0
	}
	hi := i + radius
	if hi > len(originals)-1 {
		hi = len(originals) - 1
	}
	parts := make([]string, 0, hi-lo)
	for j := lo; j <= hi; j++ {
		if j == i {
			continue
		}
		if text := strings.TrimSpace(originals[j]); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
