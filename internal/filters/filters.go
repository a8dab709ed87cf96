package filters

import (
	"slices"
	"strings"

	"trini/internal/genre"
)

// Intent classifies what the user wants from the query.
type Intent string

const (
	IntentRecommendation Intent = "recommendation"
	IntentInformation    Intent = "information"
	IntentClarification  Intent = "clarification"
)

// ParseIntent validates a raw intent string.
func ParseIntent(value string) (Intent, bool) {
	switch Intent(strings.ToLower(strings.TrimSpace(value))) {
	case IntentRecommendation:
		return IntentRecommendation, true
	case IntentInformation:
		return IntentInformation, true
	case IntentClarification:
		return IntentClarification, true
	default:
		return "", false
	}
}

const (
	MaxKeywords      = 10
	MinKeywordLength = 2
	MaxKeywordLength = 50
	MinYear          = 1900
	MaxYear          = 2030
	MinRating        = 0.0
	MaxRating        = 10.0
)

// YearRange bounds release years. Zero means unbounded on that side.
type YearRange struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// NewYearRange builds a range, swapping inverted bounds.
func NewYearRange(min, max int) *YearRange {
	if min != 0 && max != 0 && min > max {
		min, max = max, min
	}
	if min == 0 && max == 0 {
		return nil
	}
	return &YearRange{Min: min, Max: max}
}

// Span returns max-min for fully bounded ranges and 0 otherwise.
func (r *YearRange) Span() int {
	if r == nil || r.Min == 0 || r.Max == 0 {
		return 0
	}
	return r.Max - r.Min
}

// Contains reports whether year falls within the range, treating missing
// bounds as open.
func (r *YearRange) Contains(year int) bool {
	if r == nil {
		return true
	}
	if r.Min != 0 && year < r.Min {
		return false
	}
	if r.Max != 0 && year > r.Max {
		return false
	}
	return true
}

// Distance is the number of years between year and the nearest bound, 0 inside.
func (r *YearRange) Distance(year int) int {
	if r == nil {
		return 0
	}
	if r.Min != 0 && year < r.Min {
		return r.Min - year
	}
	if r.Max != 0 && year > r.Max {
		return year - r.Max
	}
	return 0
}

// RatingRange bounds the vote average, always within [0,10].
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewRatingRange builds a range, swapping inverted bounds and filling open
// sides with the scale limits. Callers must discard out-of-scale values first.
func NewRatingRange(min, max *float64) *RatingRange {
	if min == nil && max == nil {
		return nil
	}
	r := RatingRange{Min: MinRating, Max: MaxRating}
	if min != nil {
		r.Min = *min
	}
	if max != nil {
		r.Max = *max
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return &r
}

// ExtractedFilters is the structured interpretation of one query.
type ExtractedFilters struct {
	Genres      []genre.Code `json:"genres"`
	YearRange   *YearRange   `json:"year_range,omitempty"`
	RatingRange *RatingRange `json:"rating_range,omitempty"`
	Keywords    []string     `json:"keywords"`
	Intent      Intent       `json:"intent"`
	Confidence  float64      `json:"confidence"`
	ExcludeIDs  []string     `json:"exclude_ids,omitempty"`
	Calibrated  bool         `json:"calibrated"`
}

// HasAnyFilter reports whether any constraint was recognized.
func (f ExtractedFilters) HasAnyFilter() bool {
	return len(f.Genres) > 0 || f.YearRange != nil || f.RatingRange != nil || len(f.Keywords) > 0
}

// HasSpecificFilters reports whether the filters are rich enough to search
// without asking the user for more detail.
func (f ExtractedFilters) HasSpecificFilters() bool {
	return len(f.Genres) > 0 || f.YearRange != nil || f.RatingRange != nil || len(f.Keywords) >= 2
}

// Excludes reports whether id is on the exclusion list.
func (f ExtractedFilters) Excludes(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && slices.Contains(f.ExcludeIDs, id)
}

// WithExclusions returns a copy whose exclusion list is the union of the
// existing list and ids, order preserved.
func (f ExtractedFilters) WithExclusions(ids []string) ExtractedFilters {
	out := f.Clone()
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out.ExcludeIDs, id) {
			continue
		}
		out.ExcludeIDs = append(out.ExcludeIDs, id)
	}
	return out
}

// WithConfidence returns a copy with confidence clamped to [0,1].
func (f ExtractedFilters) WithConfidence(c float64) ExtractedFilters {
	out := f.Clone()
	out.Confidence = ClampConfidence(c)
	return out
}

// Clone deep-copies slices and range pointers.
func (f ExtractedFilters) Clone() ExtractedFilters {
	out := f
	out.Genres = slices.Clone(f.Genres)
	out.Keywords = slices.Clone(f.Keywords)
	out.ExcludeIDs = slices.Clone(f.ExcludeIDs)
	if f.YearRange != nil {
		yr := *f.YearRange
		out.YearRange = &yr
	}
	if f.RatingRange != nil {
		rr := *f.RatingRange
		out.RatingRange = &rr
	}
	return out
}

// ClampConfidence limits c to [0,1].
func ClampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
