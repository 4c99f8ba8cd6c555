// Package language classifies cue text into the two scripts the normalizer
// distinguishes. The test is a single capability signal: any CJK unified
// ideograph makes the text CJK, everything else is treated as Latin.
package language

// Script selects a normalization strategy.
type Script string

const (
	Latin Script = "latin"
	CJK   Script = "cjk"
)

// Detect returns CJK when the text contains at least one CJK unified
// ideograph (U+4E00..U+9FFF), Latin otherwise.
func Detect(text string) Script {
	for _, r := range text {
		if IsCJK(r) {
			return CJK
		}
	}
	return Latin
}

// IsCJK reports whether a rune is a CJK unified ideograph. The normalizer
// uses it for script-boundary spacing.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}
