package normalize

import (
	"context"
	"log/slog"

	"subfix/internal/correctors"
	"subfix/internal/language"
	"subfix/internal/logging"
)

// Normalizer performs conservative, script-aware text cleanup over cue text.
// Optional correction capabilities run before the built-in punctuation pass;
// their failures degrade to the uncorrected string.
type Normalizer struct {
	set    correctors.Set
	logger *slog.Logger
}

// New constructs a Normalizer. The corrector set may be empty; a nil logger
// falls back to the no-op logger.
func New(set correctors.Set, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		set:    set,
		logger: logging.NewComponentLogger(logger, "normalize"),
	}
}

// Normalize rewrites text under the rules for the given script. contextText
// is a window of neighboring cue text, forwarded only to the grammar
// capability; the built-in rules are context-free. The changed flag is true
// when the result differs from the input or any corrector reported a change.
func (n *Normalizer) Normalize(ctx context.Context, text string, script language.Script, contextText string) (string, bool) {
	original := text

	text, correctorChanged := n.applyCorrectors(ctx, text, contextText)

	text = collapseSpaces(text)
	switch script {
	case language.CJK:
		text = applyCJKRules(text)
	default:
		text = applyLatinRules(text)
	}

	return text, text != original || correctorChanged
}

// applyCorrectors runs the configured capabilities in order: dictionary,
// spelling, then grammar (the only one that sees the context window). Any
// error keeps the text from before the failing stage.
func (n *Normalizer) applyCorrectors(ctx context.Context, text, contextText string) (string, bool) {
	changed := false
	run := func(c correctors.Corrector, windowText string) {
		if c == nil {
			return
		}
		corrected, didChange, err := c.Correct(ctx, text, windowText)
		if err != nil {
			n.logger.Debug("corrector failed, keeping original text",
				logging.String("corrector", c.Name()),
				logging.Error(err))
			return
		}
		text = corrected
		changed = changed || didChange
	}
	run(n.set.Dictionary, "")
	run(n.set.Spelling, "")
	run(n.set.Grammar, contextText)
	return text, changed
}
