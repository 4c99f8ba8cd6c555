package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"subfix/internal/correctors"
	"subfix/internal/normalize"
	"subfix/internal/subtitle"
)

type recordingGrammar struct {
	windows []string
	rewrite func(string) string
}

func (g *recordingGrammar) Name() string { return "recording" }

func (g *recordingGrammar) Correct(_ context.Context, text, contextText string) (string, bool, error) {
	g.windows = append(g.windows, contextText)
	if g.rewrite == nil {
		return text, false, nil
	}
	out := g.rewrite(text)
	return out, out != text, nil
}

func TestProcessNormalizesThenReconciles(t *testing.T) {
	cues := []subtitle.Cue{
		{Index: 1, Start: 0, End: 400, Text: "hi"},
		{Index: 2, Start: 300, End: 1200, Text: "there."},
	}
	opts := Options{
		MinDuration: 500 * time.Millisecond,
		Normalizer:  normalize.New(correctors.Set{}, nil),
	}
	out, stats := Process(context.Background(), cues, opts)
	if len(out) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(out))
	}
	// Both cues were capitalized before the merge; the merged text is
	// concatenated as-is afterwards.
	if out[0].Text != "Hi There." {
		t.Fatalf("unexpected text %q", out[0].Text)
	}
	if out[0].Start != 0 || out[0].End != 1200 {
		t.Fatalf("unexpected timing: %d-%d", out[0].Start, out[0].End)
	}
	if stats.OriginalCount != 2 || stats.FinalCount != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Merged != 1 || stats.TextChanges != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestProcessContextWindowUsesOriginalNeighborText(t *testing.T) {
	texts := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	cues := make([]subtitle.Cue, len(texts))
	for i, text := range texts {
		cues[i] = subtitle.Cue{
			Index: i + 1,
			Start: int64(i) * 1000,
			End:   int64(i+1) * 1000,
			Text:  text,
		}
	}
	grammar := &recordingGrammar{rewrite: strings.ToUpper}
	opts := Options{
		MinDuration: 500 * time.Millisecond,
		Normalizer:  normalize.New(correctors.Set{Grammar: grammar}, nil),
	}
	Process(context.Background(), cues, opts)

	if len(grammar.windows) != len(texts) {
		t.Fatalf("expected %d grammar calls, got %d", len(texts), len(grammar.windows))
	}
	if grammar.windows[0] != "two three four" {
		t.Fatalf("unexpected leading window %q", grammar.windows[0])
	}
	// Earlier cues were already rewritten to upper case when cue five was
	// processed; its window must still show the original text.
	if grammar.windows[4] != "two three four six seven eight" {
		t.Fatalf("unexpected middle window %q", grammar.windows[4])
	}
}

func TestProcessNegativeRadiusDisablesContext(t *testing.T) {
	cues := []subtitle.Cue{
		{Index: 1, Start: 0, End: 1000, Text: "one"},
		{Index: 2, Start: 1000, End: 2000, Text: "two"},
	}
	grammar := &recordingGrammar{}
	opts := Options{
		ContextWindow: -1,
		Normalizer:    normalize.New(correctors.Set{Grammar: grammar}, nil),
	}
	Process(context.Background(), cues, opts)
	for _, window := range grammar.windows {
		if window != "" {
			t.Fatalf("expected empty windows, got %q", window)
		}
	}
}

func TestProcessWithoutNormalizer(t *testing.T) {
	cues := []subtitle.Cue{
		{Index: 1, Start: 0, End: 0, Text: "hello , world"},
	}
	out, stats := Process(context.Background(), cues, Options{MinDuration: 500 * time.Millisecond})
	if out[0].Text != "hello , world" {
		t.Fatalf("text changed without a normalizer: %q", out[0].Text)
	}
	if stats.TextChanges != 0 || stats.Adjusted != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
