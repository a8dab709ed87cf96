package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/textutil"
)

// DefaultMaxQueryLength bounds sanitized queries.
const DefaultMaxQueryLength = 500

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the time source used for relative eras ("recientes").
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMaxQueryLength overrides the sanitized query length limit.
func WithMaxQueryLength(limit int) Option {
	return func(e *Extractor) {
		if limit > 0 {
			e.maxQueryLength = limit
		}
	}
}

// Extractor performs deterministic filter extraction.
type Extractor struct {
	genres         *genre.Table
	now            func() time.Time
	maxQueryLength int
}

// New constructs an Extractor over the shared genre table.
func New(table *genre.Table, opts ...Option) *Extractor {
	if table == nil {
		table = genre.Default()
	}
	e := &Extractor{genres: table, now: time.Now, maxQueryLength: DefaultMaxQueryLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type eraPattern struct {
	re    *regexp.Regexp
	years func(now int, m []string) (int, int)
}

func fixed(min, max int) func(int, []string) (int, int) {
	return func(int, []string) (int, int) { return min, max }
}

// eraPatterns are checked in order and before bare years so "años 2000" is
// read as a decade rather than as the year 2000.
var eraPatterns = []eraPattern{
	{re: textutil.WordRegexp(`((?:19|20)\d)0'?s`), years: func(_ int, m []string) (int, int) {
		start, _ := strconv.Atoi(m[1] + "0")
		return start, start + 9
	}},
	{re: textutil.WordRegexp(`(?:años?\s*)?90s?|años?\s*noventa`), years: fixed(1990, 1999)},
	{re: textutil.WordRegexp(`(?:años?\s*)?80s?|años?\s*ochenta`), years: fixed(1980, 1989)},
	{re: textutil.WordRegexp(`(?:años?\s*)?70s?|años?\s*setenta`), years: fixed(1970, 1979)},
	{re: textutil.WordRegexp(`(?:años?\s*)?2000s?|década\s*del?\s*2000`), years: fixed(2000, 2009)},
	{re: textutil.WordRegexp(`(?:años?\s*)?2010s?|década\s*del?\s*2010`), years: fixed(2010, 2019)},
	{re: textutil.WordRegexp(`recientes?|recent|actual(?:es)?|nuevas?`), years: func(now int, _ []string) (int, int) {
		return now - 3, now
	}},
	{re: textutil.WordRegexp(`clásicas?|clasicas?|classics?|antiguos?|antiguas?|viejas?`), years: fixed(1950, 1990)},
}

var bareYearPattern = textutil.WordRegexp(`((?:19|20)\d{2})`)

var (
	explicitRatingPattern = textutil.WordRegexp(`(\d+(?:\.\d+)?)\s*(?:estrellas?|stars?|puntos?|rating)`)
	ratingDePattern       = textutil.WordRegexp(`rating\s+de\s+(\d+(?:\.\d+)?)`)
)

var qualityPatterns = []struct {
	re     *regexp.Regexp
	rating float64
}{
	{re: textutil.WordRegexp(`excelentes?|excellent|increíbles?|fantásticas?|geniales?|obras? maestras?`), rating: 8.0},
	{re: textutil.WordRegexp(`buenas?|buenos?|good|recomendadas?|populares?|bien valoradas?`), rating: 7.0},
	{re: textutil.WordRegexp(`decentes?|decent|aceptables?`), rating: 6.0},
}

var informationPatterns = []*regexp.Regexp{
	textutil.WordRegexp(`qué tal|que tal|cómo está|opinión|opinion|review|crítica|critica`),
	textutil.WordRegexp(`cuándo|dónde|quién|por qué|cómo`),
	textutil.WordRegexp(`información|informacion|detalles|datos`),
}

// Extract derives filters from query without any remote calls.
func (e *Extractor) Extract(query string) filters.ExtractedFilters {
	lowered := textutil.Lower(query)

	out := filters.ExtractedFilters{
		Genres:    e.genres.Match(query),
		YearRange: e.extractYearRange(lowered),
		Intent:    determineIntent(lowered),
	}
	if rating, ok := extractRating(lowered); ok {
		out.RatingRange = filters.NewRatingRange(&rating, nil)
	}

	if strings.Contains(lowered, "comedia") && (strings.Contains(lowered, "español") || strings.Contains(lowered, "española")) {
		out.Genres = []genre.Code{genre.Comedy}
		out.Keywords = []string{"comedia", "española", "español"}
		out.Confidence = 0.8
	} else {
		out.Keywords = extractKeywords(query)
		switch {
		case len(out.Genres) > 0:
			out.Confidence = 0.6
		case len(out.Keywords) > 0:
			out.Confidence = 0.4
		default:
			out.Confidence = 0.2
		}
	}

	if !out.HasAnyFilter() {
		out.Intent = filters.IntentClarification
	}
	out.Confidence = filters.ClampConfidence(out.Confidence)
	return out
}

func (e *Extractor) extractYearRange(lowered string) *filters.YearRange {
	current := e.now().Year()
	for _, era := range eraPatterns {
		if m := era.re.FindStringSubmatch(lowered); m != nil {
			return filters.NewYearRange(era.years(current, m))
		}
	}
	if m := bareYearPattern.FindStringSubmatch(lowered); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return filters.NewYearRange(year-2, year+2)
		}
	}
	return nil
}

func extractRating(lowered string) (float64, bool) {
	for _, re := range []*regexp.Regexp{explicitRatingPattern, ratingDePattern} {
		if m := re.FindStringSubmatch(lowered); m != nil {
			if value, err := strconv.ParseFloat(m[1], 64); err == nil {
				return min(max(value, filters.MinRating), filters.MaxRating), true
			}
		}
	}
	for _, q := range qualityPatterns {
		if q.re.MatchString(lowered) {
			return q.rating, true
		}
	}
	return 0, false
}

func extractKeywords(query string) []string {
	var out []string
	for _, word := range textutil.Words(query) {
		n := utf8.RuneCountInString(word)
		if n <= 2 || n > filters.MaxKeywordLength {
			continue
		}
		if textutil.IsStopWord(word) || textutil.IsVagueWord(word) {
			continue
		}
		out = append(out, word)
		if len(out) == filters.MaxKeywords {
			break
		}
	}
	return out
}

func determineIntent(lowered string) filters.Intent {
	for _, re := range informationPatterns {
		if re.MatchString(lowered) {
			return filters.IntentInformation
		}
	}
	if len(textutil.Fields(lowered)) <= 2 || textutil.ContainsAny(lowered, "algo", "cualquier", "no sé") {
		return filters.IntentClarification
	}
	return filters.IntentRecommendation
}
