package normalize

import (
	"context"
	"errors"
	"testing"

	"subfix/internal/correctors"
	"subfix/internal/language"
)

func newPlain() *Normalizer {
	return New(correctors.Set{}, nil)
}

func TestLatinPunctuationAndCapitalization(t *testing.T) {
	n := newPlain()
	got, changed := n.Normalize(context.Background(), "hello , world", language.Latin, "")
	if !changed {
		t.Fatal("expected change")
	}
	if got != "Hello, world" {
		t.Fatalf("got %q", got)
	}
}

func TestLatinInsertsSpaceAfterPunctuation(t *testing.T) {
	n := newPlain()
	got, _ := n.Normalize(context.Background(), "wait.what?now", language.Latin, "")
	if got != "Wait. what? now" {
		t.Fatalf("got %q", got)
	}
}

func TestLatinCollapsesWhitespaceRuns(t *testing.T) {
	n := newPlain()
	got, changed := n.Normalize(context.Background(), "  Too  many \t spaces  ", language.Latin, "")
	if !changed || got != "Too many spaces" {
		t.Fatalf("got %q changed=%v", got, changed)
	}
}

func TestCJKSpacingRules(t *testing.T) {
	n := newPlain()
	got, changed := n.Normalize(context.Background(), "我有3個apple ，真的", language.CJK, "")
	if !changed {
		t.Fatal("expected change")
	}
	if got != "我有 3 個 apple，真的" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newPlain()
	inputs := []struct {
		text   string
		script language.Script
	}{
		{"hello , world!how are you", language.Latin},
		{"字幕abc測試 ，好123", language.CJK},
		{"Already clean text.", language.Latin},
	}
	for _, tc := range inputs {
		once, _ := n.Normalize(context.Background(), tc.text, tc.script, "")
		twice, changed := n.Normalize(context.Background(), once, tc.script, "")
		if twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", tc.text, once, twice)
		}
		if changed {
			t.Fatalf("second pass reported change for %q", once)
		}
	}
}

func TestNoChangeReportsFalse(t *testing.T) {
	n := newPlain()
	got, changed := n.Normalize(context.Background(), "Nothing to do here", language.Latin, "")
	if changed || got != "Nothing to do here" {
		t.Fatalf("got %q changed=%v", got, changed)
	}
}

func TestCapitalizationCapitalizesOnlyLowercase(t *testing.T) {
	n := newPlain()
	if got, _ := n.Normalize(context.Background(), "3 o'clock", language.Latin, ""); got != "3 o'clock" {
		t.Fatalf("digit-leading text should be untouched, got %q", got)
	}
}

func TestCorrectorChangeORsIntoFlag(t *testing.T) {
	dict := correctors.NewDictionary(map[string]string{"Teh": "The"})
	n := New(correctors.Set{Dictionary: dict}, nil)
	got, changed := n.Normalize(context.Background(), "Teh end.", language.Latin, "")
	if !changed || got != "The end." {
		t.Fatalf("got %q changed=%v", got, changed)
	}
}

func TestCorrectorFailureSwallowed(t *testing.T) {
	n := New(correctors.Set{Grammar: failingCorrector{}}, nil)
	got, changed := n.Normalize(context.Background(), "Fine text.", language.Latin, "window")
	if changed || got != "Fine text." {
		t.Fatalf("failed corrector must be a no-op, got %q changed=%v", got, changed)
	}
}

func TestContextReachesGrammarOnly(t *testing.T) {
	grammar := &recordingCorrector{}
	dict := &recordingCorrector{}
	n := New(correctors.Set{Dictionary: dict, Grammar: grammar}, nil)
	n.Normalize(context.Background(), "Some text.", language.Latin, "neighbor cues")
	if grammar.gotContext != "neighbor cues" {
		t.Fatalf("grammar corrector context = %q", grammar.gotContext)
	}
	if dict.gotContext != "" {
		t.Fatalf("dictionary corrector should not receive context, got %q", dict.gotContext)
	}
}

type failingCorrector struct{}

func (failingCorrector) Name() string { return "failing" }

func (failingCorrector) Correct(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("service unavailable")
}

type recordingCorrector struct {
	gotContext string
}

func (r *recordingCorrector) Name() string { return "recording" }

func (r *recordingCorrector) Correct(_ context.Context, text, contextText string) (string, bool, error) {
	r.gotContext = contextText
	return text, false, nil
}
