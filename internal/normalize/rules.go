package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spaceRunRe   = regexp.MustCompile("[ \t ]+")
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)

	latinSpaceBeforePunctRe = regexp.MustCompile(`\s+([.,!?;:])`)
	latinNoSpaceAfterRe     = regexp.MustCompile(`([.,!?;:])(\S)`)

	cjkSpaceBeforePunctRe = regexp.MustCompile("\\s+([，。！？；：、])")
	cjkThenLatinRe        = regexp.MustCompile("([一-鿿])([A-Za-z0-9])")
	latinThenCJKRe        = regexp.MustCompile("([A-Za-z0-9])([一-鿿])")
)

// collapseSpaces is the universal pre-step: runs of space, tab, and NBSP
// become one ASCII space and the ends are trimmed. Newlines survive so
// multi-line cues keep their breaks.
func collapseSpaces(text string) string {
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))
}

// applyLatinRules fixes punctuation spacing and sentence-leading case for
// Latin-script text.
func applyLatinRules(text string) string {
	text = latinSpaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = latinNoSpaceAfterRe.ReplaceAllString(text, "$1 $2")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return capitalizeFirst(text)
}

// applyCJKRules fixes spacing around CJK punctuation and inserts one space
// at every CJK/Latin script boundary in both directions.
func applyCJKRules(text string) string {
	text = cjkSpaceBeforePunctRe.ReplaceAllString(text, "$1")
	text = cjkThenLatinRe.ReplaceAllString(text, "$1 $2")
	text = latinThenCJKRe.ReplaceAllString(text, "$1 $2")
	return multiSpaceRe.ReplaceAllString(text, " ")
}

func capitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
