// Package textutil provides the text helpers shared by query extraction,
// genre matching, and candidate screening.
//
// The primary use cases are:
//   - Folding text to lowercase without diacritics so "Acción" and "accion"
//     compare equal
//   - Splitting text into Unicode word tokens
//   - Building regular expressions with Unicode-aware word boundaries, which
//     RE2's ASCII-only \b cannot express for Spanish text
//   - Collapsing whitespace and stripping markup characters from user input
//
// The bilingual stop-word and vague-term lexicons also live here so every
// package tokenizes with the same vocabulary.
package textutil
