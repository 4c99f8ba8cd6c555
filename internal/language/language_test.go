package language

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		text string
		want Script
	}{
		{"Hello there", Latin},
		{"", Latin},
		{"1234 ?!", Latin},
		{"你好", CJK},
		{"mixed 字幕 text", CJK},
		{"カタカナ", Latin}, // kana outside the unified ideograph range
	}
	for _, tc := range cases {
		if got := Detect(tc.text); got != tc.want {
			t.Fatalf("Detect(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
