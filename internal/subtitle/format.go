package subtitle

import (
	"path/filepath"
	"strings"
)

// Format identifies a subtitle container syntax.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// separator returns the millisecond separator for the format.
func (f Format) separator() byte {
	if f == FormatVTT {
		return '.'
	}
	return ','
}

// sibling returns the other format, used for fallback timestamp parsing.
func (f Format) sibling() Format {
	if f == FormatVTT {
		return FormatSRT
	}
	return FormatVTT
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "srt":
		return FormatSRT, true
	case "vtt", "webvtt":
		return FormatVTT, true
	default:
		return "", false
	}
}

// DetectFormat resolves a subtitle format from the file extension, falling
// back to content sniffing for the WEBVTT header. SRT is the default.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	case ".srt":
		return FormatSRT
	}
	firstLine := string(content)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}
	if strings.HasPrefix(strings.TrimSpace(firstLine), "WEBVTT") {
		return FormatVTT
	}
	return FormatSRT
}
