package validation

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/services"
)

const (
	minGenreID = 1
	maxGenreID = 99999
	// unparseableConfidence is used when the model returns a confidence that
	// cannot be read as a number.
	unparseableConfidence = 0.1
)

// Validator converts raw model payloads into filters.
type Validator struct {
	genres *genre.Table
}

// New constructs a Validator over the shared genre table.
func New(table *genre.Table) *Validator {
	if table == nil {
		table = genre.Default()
	}
	return &Validator{genres: table}
}

// Validate accepts a decoded map, JSON text, or mixed text containing a JSON
// fragment. It returns services.ErrMalformedPayload when no usable payload is
// found.
func (v *Validator) Validate(raw any) (filters.ExtractedFilters, error) {
	switch value := raw.(type) {
	case map[string]any:
		return v.validateMap(value)
	case string:
		return v.validateText(value)
	case []byte:
		return v.validateText(string(value))
	case nil:
		return filters.ExtractedFilters{}, malformed("payload is empty")
	default:
		return filters.ExtractedFilters{}, malformed(fmt.Sprintf("unsupported payload type %T", raw))
	}
}

func (v *Validator) validateText(text string) (filters.ExtractedFilters, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return filters.ExtractedFilters{}, malformed("payload is empty")
	}
	if parsed, ok := decodeObject(text); ok {
		return v.validateMap(parsed)
	}
	for _, fragment := range embeddedFragments(text) {
		if parsed, ok := decodeObject(fragment); ok {
			return v.validateMap(parsed)
		}
	}
	return filters.ExtractedFilters{}, malformed("no JSON object found in model output")
}

func decodeObject(text string) (map[string]any, bool) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil || parsed == nil {
		return nil, false
	}
	return parsed, true
}

func (v *Validator) validateMap(payload map[string]any) (filters.ExtractedFilters, error) {
	rawGenres, ok := payload["genres"].([]any)
	if !ok {
		return filters.ExtractedFilters{}, malformed("genres must be a list")
	}
	rawIntent, ok := payload["intent"].(string)
	if !ok {
		return filters.ExtractedFilters{}, malformed("intent must be a string")
	}
	rawConfidence, present := payload["confidence"]
	if !present {
		return filters.ExtractedFilters{}, malformed("confidence is required")
	}
	confidence, err := parseConfidence(rawConfidence)
	if err != nil {
		return filters.ExtractedFilters{}, err
	}

	intent, known := filters.ParseIntent(rawIntent)
	if !known {
		intent = filters.IntentRecommendation
	}

	out := filters.ExtractedFilters{
		Genres:      v.parseGenres(rawGenres),
		YearRange:   parseYearRange(payload["year_range"]),
		RatingRange: parseRatingRange(payload["rating_min"], payload["rating_max"]),
		Keywords:    parseKeywords(payload["keywords"]),
		Intent:      intent,
		Confidence:  confidence,
		ExcludeIDs:  parseStrings(payload["exclude_ids"]),
	}
	if calibrated, ok := payload["calibrated"].(bool); ok {
		out.Calibrated = calibrated
	}
	return out, nil
}

func parseConfidence(raw any) (float64, error) {
	var value float64
	switch c := raw.(type) {
	case float64:
		value = c
	case int:
		value = float64(c)
	case json.Number:
		parsed, err := c.Float64()
		if err != nil {
			return unparseableConfidence, nil
		}
		value = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return unparseableConfidence, nil
		}
		value = parsed
	default:
		return unparseableConfidence, nil
	}
	if math.IsNaN(value) || value < 0 || value > 1 {
		return 0, malformed(fmt.Sprintf("confidence %v outside [0,1]", value))
	}
	return value, nil
}

func (v *Validator) parseGenres(raw []any) []genre.Code {
	var out []genre.Code
	add := func(id int) {
		if id < minGenreID || id > maxGenreID {
			return
		}
		if code := genre.Code(id); !slices.Contains(out, code) {
			out = append(out, code)
		}
	}
	for _, entry := range raw {
		switch g := entry.(type) {
		case float64:
			if g == math.Trunc(g) {
				add(int(g))
			}
		case int:
			add(g)
		case string:
			trimmed := strings.TrimSpace(g)
			if isDigits(trimmed) {
				if id, err := strconv.Atoi(trimmed); err == nil {
					add(id)
				}
				continue
			}
			if code, ok := v.genres.Lookup(trimmed); ok {
				add(int(code))
			}
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseYearRange(raw any) *filters.YearRange {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	return filters.NewYearRange(validYear(obj["min"]), validYear(obj["max"]))
}

// validYear returns 0 for anything that is not an integral year in range.
func validYear(raw any) int {
	var year int
	switch y := raw.(type) {
	case float64:
		if y != math.Trunc(y) {
			return 0
		}
		year = int(y)
	case int:
		year = y
	default:
		return 0
	}
	if year < filters.MinYear || year > filters.MaxYear {
		return 0
	}
	return year
}

func parseRatingRange(rawMin, rawMax any) *filters.RatingRange {
	return filters.NewRatingRange(validRating(rawMin), validRating(rawMax))
}

// validRating discards values outside the 0-10 scale rather than clamping.
func validRating(raw any) *float64 {
	var rating float64
	switch r := raw.(type) {
	case float64:
		rating = r
	case int:
		rating = float64(r)
	default:
		return nil
	}
	if math.IsNaN(rating) || rating < filters.MinRating || rating > filters.MaxRating {
		return nil
	}
	return &rating
}

func parseKeywords(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range list {
		keyword, ok := entry.(string)
		if !ok {
			continue
		}
		keyword = strings.TrimSpace(keyword)
		if n := utf8.RuneCountInString(keyword); n < filters.MinKeywordLength || n > filters.MaxKeywordLength {
			continue
		}
		out = append(out, keyword)
		if len(out) == filters.MaxKeywords {
			break
		}
	}
	return out
}

func parseStrings(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range list {
		switch id := entry.(type) {
		case string:
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		case float64:
			out = append(out, strconv.FormatFloat(id, 'f', -1, 64))
		}
	}
	return out
}

func malformed(message string) error {
	return services.Wrap(services.ErrMalformedPayload, "validation", "payload", message, nil)
}
