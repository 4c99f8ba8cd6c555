package subtitle

import (
	"errors"
	"testing"
)

func TestParseTimestampBothSeparators(t *testing.T) {
	cases := []struct {
		raw    string
		format Format
		want   int64
	}{
		{"00:00:01,500", FormatSRT, 1500},
		{"00:00:01.500", FormatVTT, 1500},
		{"00:00:01.500", FormatSRT, 1500}, // sibling fallback
		{"00:00:01,500", FormatVTT, 1500}, // sibling fallback
		{"01:02:03,004", FormatSRT, 3723004},
		{"100:00:00,000", FormatSRT, 360000000},
		// Field overflow is shape-valid; the arithmetic carries it.
		{"00:61:00,000", FormatSRT, 3660000},
		{"00:00:61,000", FormatSRT, 61000},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.raw, tc.format)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q, %s): %v", tc.raw, tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTimestamp(%q, %s) = %d, want %d", tc.raw, tc.format, got, tc.want)
		}
	}
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "1:02:03,004", "00:02:03", "00:02:03,04"} {
		if _, err := ParseTimestamp(raw, FormatSRT); !errors.Is(err, ErrMalformedTimestamp) {
			t.Fatalf("ParseTimestamp(%q) error = %v, want ErrMalformedTimestamp", raw, err)
		}
	}
}

func TestFormatTimestampRoundTrip(t *testing.T) {
	for _, raw := range []string{"00:00:00,000", "00:01:02,345", "12:34:56,789", "99:59:59,999"} {
		ms, err := ParseTimestamp(raw, FormatSRT)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := FormatTimestamp(ms, FormatSRT); got != raw {
			t.Fatalf("round trip %q = %q", raw, got)
		}
	}
	// Round trip canonicalizes the sibling separator style.
	ms, err := ParseTimestamp("00:00:02.500", FormatSRT)
	if err != nil {
		t.Fatalf("parse fallback: %v", err)
	}
	if got := FormatTimestamp(ms, FormatSRT); got != "00:00:02,500" {
		t.Fatalf("canonicalized round trip = %q", got)
	}
}

func TestFormatTimestampCanonicalizesFieldOverflow(t *testing.T) {
	ms, err := ParseTimestamp("00:61:00,000", FormatSRT)
	if err != nil {
		t.Fatalf("parse overflowed minutes: %v", err)
	}
	if got := FormatTimestamp(ms, FormatSRT); got != "01:01:00,000" {
		t.Fatalf("canonicalized overflow = %q, want 01:01:00,000", got)
	}
}

func TestFormatTimestampClampsNegative(t *testing.T) {
	if got := FormatTimestamp(-250, FormatVTT); got != "00:00:00.000" {
		t.Fatalf("negative input = %q, want clamp to zero", got)
	}
}
