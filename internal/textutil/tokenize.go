package textutil

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// boundary matches the edge of a Unicode word.
const boundaryStart = `(?:^|[^\p{L}\p{N}_])`
const boundaryEnd = `(?:[^\p{L}\p{N}_]|$)`

// Words returns the lowercase Unicode word tokens of text in order.
func Words(text string) []string {
	return wordPattern.FindAllString(Lower(text), -1)
}

// Fields splits on whitespace, matching how users count words in a query.
func Fields(text string) []string {
	return strings.Fields(text)
}

// WordRegexp compiles expr so it only matches on whole Unicode words. The
// wrapper groups are non-capturing so submatch indexes of expr are preserved.
func WordRegexp(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + boundaryStart + `(?:` + expr + `)` + boundaryEnd)
}

// ContainsAny reports whether text contains any of the needles as substrings.
func ContainsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
