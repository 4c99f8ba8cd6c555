package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp indicates a time value that matches neither the
// expected nor the sibling separator pattern.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

var (
	timestampSRTRe = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)
	timestampVTTRe = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{3})$`)
)

func timestampPattern(f Format) *regexp.Regexp {
	if f == FormatVTT {
		return timestampVTTRe
	}
	return timestampSRTRe
}

// ParseTimestamp converts an HH:MM:SS<sep>mmm string into milliseconds. The
// separator of the expected format is tried first, then the sibling format's
// separator as a fallback. Hours are elapsed time, not wall clock, so values
// beyond 23 (and beyond two digits) are accepted.
func ParseTimestamp(raw string, expected Format) (int64, error) {
	value := strings.TrimSpace(raw)
	match := timestampPattern(expected).FindStringSubmatch(value)
	if match == nil {
		match = timestampPattern(expected.sibling()).FindStringSubmatch(value)
	}
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, raw)
	}
	hours, _ := strconv.ParseInt(match[1], 10, 64)
	minutes, _ := strconv.ParseInt(match[2], 10, 64)
	seconds, _ := strconv.ParseInt(match[3], 10, 64)
	millis, _ := strconv.ParseInt(match[4], 10, 64)
	// Validation is shape only. Field overflow like 00:61:00 carries into
	// the millisecond total, so formatting canonicalizes it to 01:01:00.
	return ((hours*60+minutes)*60+seconds)*1000 + millis, nil
}

// FormatTimestamp renders milliseconds in the target format's timestamp
// syntax. Negative input clamps to zero rather than failing.
func FormatTimestamp(ms int64, target Format) string {
	if ms < 0 {
		ms = 0
	}
	millis := ms % 1000
	seconds := (ms / 1000) % 60
	minutes := (ms / (1000 * 60)) % 60
	hours := ms / (1000 * 60 * 60)
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, target.separator(), millis)
}
