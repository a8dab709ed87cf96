package filters

import "github.com/goccy/go-json"

// Payload renders the filters in the same shape the language model is asked
// to produce, using JSON-decoded value types so the result can be fed back
// through validation unchanged.
func (f ExtractedFilters) Payload() map[string]any {
	genres := make([]any, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, float64(g))
	}
	keywords := make([]any, 0, len(f.Keywords))
	for _, k := range f.Keywords {
		keywords = append(keywords, k)
	}
	out := map[string]any{
		"genres":     genres,
		"keywords":   keywords,
		"intent":     string(f.Intent),
		"confidence": f.Confidence,
		"calibrated": f.Calibrated,
	}
	if f.YearRange != nil {
		yr := map[string]any{}
		if f.YearRange.Min != 0 {
			yr["min"] = float64(f.YearRange.Min)
		}
		if f.YearRange.Max != 0 {
			yr["max"] = float64(f.YearRange.Max)
		}
		out["year_range"] = yr
	}
	if f.RatingRange != nil {
		out["rating_min"] = f.RatingRange.Min
		out["rating_max"] = f.RatingRange.Max
	}
	if len(f.ExcludeIDs) > 0 {
		ids := make([]any, 0, len(f.ExcludeIDs))
		for _, id := range f.ExcludeIDs {
			ids = append(ids, id)
		}
		out["exclude_ids"] = ids
	}
	return out
}

// MarshalPayload encodes Payload as JSON text.
func (f ExtractedFilters) MarshalPayload() ([]byte, error) {
	return json.Marshal(f.Payload())
}
