package textutil

import "strings"

// markupReplacer removes characters that could smuggle structure into a prompt.
var markupReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	"{", "",
	"}", "",
	"[", "",
	"]", "",
	"\\", "",
)

// CollapseWhitespace trims text and replaces internal whitespace runs with a
// single space.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// StripMarkup removes angle brackets, braces, square brackets, and backslashes.
func StripMarkup(text string) string {
	return markupReplacer.Replace(text)
}

// Truncate shortens text to at most limit runes.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
