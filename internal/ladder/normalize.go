package ladder

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lowercases w.
// A Caser is stateful, so one is built per call.
func Normalize(w string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(w))
}

// Length is the number of letters in w.
func Length(w string) int { return utf8.RuneCountInString(w) }
