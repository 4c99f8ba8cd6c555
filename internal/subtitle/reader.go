package subtitle

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat indicates content that yields no parseable cues in
// either syntax.
var ErrUnsupportedFormat = errors.New("unsupported subtitle format")

var blockSeparatorRe = regexp.MustCompile(`\n{2,}`)

// ParseResult holds the cues read from a file plus a count of blocks that had
// to be dropped during recovery.
type ParseResult struct {
	Cues    []Cue
	Dropped int
}

// Parse reads SRT or VTT content into an ordered cue sequence. Structural
// defects in individual blocks (missing "-->", unparsable timestamps) drop
// the block and keep going; an input with no recoverable cues at all returns
// ErrUnsupportedFormat.
func Parse(content string, format Format) (ParseResult, error) {
	var result ParseResult

	content = strings.ReplaceAll(content, "\r\n", "\n")
	if format == FormatVTT {
		content = stripVTTHeader(content)
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return result, ErrUnsupportedFormat
	}

	for _, block := range blockSeparatorRe.Split(trimmed, -1) {
		lines := splitBlockLines(block)
		if len(lines) < 2 {
			if len(lines) > 0 {
				result.Dropped++
			}
			continue
		}

		// First line may be an SRT index or a VTT cue identifier.
		index := len(result.Cues) + 1
		timeLine := lines[0]
		textLines := lines[1:]
		if parsed, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			index = parsed
			timeLine = lines[1]
			textLines = lines[2:]
		} else if !strings.Contains(lines[0], "-->") && strings.Contains(lines[1], "-->") {
			timeLine = lines[1]
			textLines = lines[2:]
		}

		start, end, ok := parseTimeRange(timeLine, format)
		if !ok {
			result.Dropped++
			continue
		}

		result.Cues = append(result.Cues, Cue{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(strings.Join(textLines, "\n")),
		})
	}

	if len(result.Cues) == 0 {
		return result, ErrUnsupportedFormat
	}
	return result, nil
}

func parseTimeRange(line string, format Format) (int64, int64, bool) {
	if !strings.Contains(line, "-->") {
		return 0, 0, false
	}
	parts := strings.SplitN(line, "-->", 2)
	startRaw := strings.TrimSpace(parts[0])
	endRaw := strings.TrimSpace(parts[1])
	// VTT cue settings may trail the end timestamp.
	if fields := strings.Fields(endRaw); len(fields) > 0 {
		endRaw = fields[0]
	}
	start, err := ParseTimestamp(startRaw, format)
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseTimestamp(endRaw, format)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func splitBlockLines(block string) []string {
	raw := strings.Split(strings.TrimSpace(block), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func stripVTTHeader(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "WEBVTT") {
		return strings.Join(lines[1:], "\n")
	}
	return content
}
