package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases text and removes combining marks ("Acción" -> "accion").
// The transformer is built per call because transform.Chain keeps state.
func Fold(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// Lower lowercases text with Spanish casing rules, keeping accents.
func Lower(text string) string {
	return cases.Lower(language.Spanish).String(text)
}

// Title capitalizes each word using Spanish casing rules.
func Title(text string) string {
	return cases.Title(language.Spanish).String(text)
}
