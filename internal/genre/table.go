package genre

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"trini/internal/textutil"
)

// Code is a canonical TMDB genre identifier.
type Code int

const (
	Action      Code = 28
	Adventure   Code = 12
	Animation   Code = 16
	Comedy      Code = 35
	Crime       Code = 80
	Documentary Code = 99
	Drama       Code = 18
	Family      Code = 10751
	Fantasy     Code = 14
	History     Code = 36
	Horror      Code = 27
	Music       Code = 10402
	Mystery     Code = 9648
	Romance     Code = 10749
	SciFi       Code = 878
	Thriller    Code = 53
	War         Code = 10752
	Western     Code = 37
)

// String renders the numeric code as TMDB expects it in query strings.
func (c Code) String() string { return strconv.Itoa(int(c)) }

type pattern struct {
	re    *regexp.Regexp
	codes []Code
}

// Info describes one canonical genre.
type Info struct {
	Code    Code
	Name    string // Spanish display name
	Key     string // English slug used in cache keys
	Terms   []string
	Related []Code
}

// Table is the immutable bidirectional term/code index.
type Table struct {
	terms    []termEntry
	byCode   map[Code]Info
	order    []Code
	patterns []pattern
}

type termEntry struct {
	term string
	code Code
}

// Default builds the table with the bundled vocabulary.
func Default() *Table {
	t := &Table{byCode: make(map[Code]Info, len(catalog))}
	for _, info := range catalog {
		t.byCode[info.Code] = info
		t.order = append(t.order, info.Code)
		for _, term := range info.Terms {
			t.terms = append(t.terms, termEntry{term: textutil.Fold(term), code: info.Code})
		}
	}
	for expr, codes := range fuzzyPatterns {
		t.patterns = append(t.patterns, pattern{re: textutil.WordRegexp(expr), codes: codes})
	}
	// Map iteration is random; sort so matching order is reproducible.
	slices.SortFunc(t.patterns, func(a, b pattern) int { return strings.Compare(a.re.String(), b.re.String()) })
	return t
}

// Match returns the codes mentioned in text: exact term substrings first, then
// fuzzy patterns, deduplicated in first-seen order.
func (t *Table) Match(text string) []Code {
	folded := textutil.Fold(text)
	lowered := textutil.Lower(text)
	seen := make(map[Code]struct{})
	var out []Code
	add := func(c Code) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, entry := range t.terms {
		if strings.Contains(folded, entry.term) {
			add(entry.code)
		}
	}
	for _, p := range t.patterns {
		if p.re.MatchString(lowered) || p.re.MatchString(folded) {
			for _, c := range p.codes {
				add(c)
			}
		}
	}
	return out
}

// Lookup resolves a single genre name to its code. Exact terms win; the first
// code of a matching fuzzy pattern is used otherwise.
func (t *Table) Lookup(name string) (Code, bool) {
	folded := strings.TrimSpace(textutil.Fold(name))
	if folded == "" {
		return 0, false
	}
	for _, entry := range t.terms {
		if entry.term == folded {
			return entry.code, true
		}
	}
	for _, p := range t.patterns {
		if p.re.MatchString(folded) && len(p.codes) > 0 {
			return p.codes[0], true
		}
	}
	return 0, false
}

// Known reports whether code is part of the table.
func (t *Table) Known(code Code) bool {
	_, ok := t.byCode[code]
	return ok
}

// Info returns the metadata for code.
func (t *Table) Info(code Code) (Info, bool) {
	info, ok := t.byCode[code]
	return info, ok
}

// Name returns the Spanish display name, or "género N" for unknown codes.
func (t *Table) Name(code Code) string {
	if info, ok := t.byCode[code]; ok {
		return info.Name
	}
	return "género " + code.String()
}

// Names maps codes to display names.
func (t *Table) Names(codes []Code) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, t.Name(c))
	}
	return out
}

// CacheKey returns the English slug used in cache keys ("action", "scifi").
func (t *Table) CacheKey(code Code) (string, bool) {
	info, ok := t.byCode[code]
	if !ok || info.Key == "" {
		return "", false
	}
	return info.Key, true
}

// All lists every genre in table order.
func (t *Table) All() []Info {
	out := make([]Info, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, t.byCode[c])
	}
	return out
}

// Complementary returns genres that pair well with primary, excluding primary
// itself, in first-seen order.
func (t *Table) Complementary(primary []Code) []Code {
	var out []Code
	for _, c := range primary {
		for _, rel := range t.byCode[c].Related {
			if slices.Contains(primary, rel) || slices.Contains(out, rel) {
				continue
			}
			out = append(out, rel)
		}
	}
	return out
}

// Describe renders a Spanish phrase for a genre list ("géneros acción y drama").
func (t *Table) Describe(codes []Code) string {
	names := t.Names(codes)
	switch len(names) {
	case 0:
		return "sin géneros específicos"
	case 1:
		return "género " + names[0]
	case 2:
		return "géneros " + names[0] + " y " + names[1]
	default:
		return "géneros " + strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}

// Reference renders the "Código: nombre" lines used in the extraction prompt.
func (t *Table) Reference() string {
	var b strings.Builder
	for _, info := range t.All() {
		b.WriteString("- ")
		b.WriteString(info.Code.String())
		b.WriteString(": ")
		b.WriteString(info.Name)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
