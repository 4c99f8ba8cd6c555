package reconcile

import (
	"strings"
	"time"
	"unicode/utf8"

	"subfix/internal/subtitle"
)

// DefaultMinDuration is the duration floor applied when none is configured.
const DefaultMinDuration = 500 * time.Millisecond

// Stats counts the repairs a reconciliation run performed. Counters only
// accumulate; they are reset per file by constructing a fresh value.
type Stats struct {
	Adjusted   int
	Merged     int
	Renumbered int
}

// sentence-terminal marks; a cue ending in one is kept as a segmentation
// point and never receives a backward merge.
var terminalMarks = map[rune]bool{
	'.': true, '?': true, '!': true,
	'。': true, '！': true, '？': true,
}

// Run repairs cue timing in three ordered passes: per-cue duration repair,
// a single left-to-right overlap-and-merge scan, and a final overlap sweep
// over the merged output. The input slice is consumed; the returned slice
// satisfies the non-overlap invariant, and cues below the duration floor
// are folded into a neighbor wherever the surrounding text allows it.
func Run(cues []subtitle.Cue, minDuration time.Duration) ([]subtitle.Cue, Stats) {
	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}
	minMs := minDuration.Milliseconds()
	var stats Stats

	// Pass 1: repair zero and negative durations independently per cue.
	for i := range cues {
		if cues[i].End <= cues[i].Start {
			cues[i].End = cues[i].Start + minMs
			stats.Adjusted++
		}
	}

	// Pass 2: enforce monotonic starts and merge sub-threshold cues. The
	// scan owns an accumulating output list; merges write only to the most
	// recently accepted cue or to the next input cue, never further back.
	out := make([]subtitle.Cue, 0, len(cues))
	for i := 0; i < len(cues); i++ {
		s := cues[i]

		if len(out) > 0 && s.Start < out[len(out)-1].End {
			s.Start = out[len(out)-1].End
			if s.End <= s.Start {
				s.End = s.Start + minMs
			}
			stats.Adjusted++
		}

		short := s.End-s.Start < minMs

		// Backward merge: only across a non-terminal boundary, so a cue
		// that finished its sentence stays a segmentation point.
		if short && len(out) > 0 && !endsWithTerminalMark(out[len(out)-1].Text) {
			prev := &out[len(out)-1]
			prev.Text = joinCueText(prev.Text, s.Text)
			if s.End > prev.End {
				prev.End = s.End
			}
			stats.Merged++
			continue
		}

		// Forward merge: the short cue is a fragment immediately followed
		// by more dialogue; fold it into the next cue and let the extended
		// cue be processed on the following iteration.
		if short && i+1 < len(cues) && cues[i+1].Start <= s.End+minMs/2 {
			cues[i+1].Start = s.Start
			cues[i+1].Text = joinCueText(s.Text, cues[i+1].Text)
			stats.Merged++
			continue
		}

		out = append(out, s)
	}

	// Pass 3: merges can reintroduce overlaps; sweep once more.
	for j := 1; j < len(out); j++ {
		if out[j].Start < out[j-1].End {
			out[j].Start = out[j-1].End
			if out[j].End <= out[j].Start {
				out[j].End = out[j].Start + minMs
			}
			stats.Adjusted++
		}
	}

	stats.Renumbered = len(out)
	return out, stats
}

func endsWithTerminalMark(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return terminalMarks[last]
}

func joinCueText(left, right string) string {
	left = strings.TrimRight(left, " \t")
	right = strings.TrimLeft(right, " \t")
	switch {
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + " " + right
	}
}
