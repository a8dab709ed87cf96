package validation

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")

// embeddedFragments lists candidate JSON snippets inside mixed text, most
// specific first: fenced blocks, then brace spans mentioning a payload key.
func embeddedFragments(text string) []string {
	var out []string
	for _, m := range codeFencePattern.FindAllStringSubmatch(text, -1) {
		if body := strings.TrimSpace(m[1]); body != "" {
			out = append(out, body)
		}
	}
	for _, span := range balancedSpans(text) {
		if strings.Contains(span, `"genres"`) || strings.Contains(span, `"confidence"`) {
			out = append(out, span)
		}
	}
	return out
}

// balancedSpans returns every outermost {...} span in text, honoring quoted
// strings so braces inside values do not unbalance the scan.
func balancedSpans(text string) []string {
	var spans []string
	depth := 0
	start := -1
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				spans = append(spans, text[start:i+1])
				start = -1
			}
		}
	}
	return spans
}
