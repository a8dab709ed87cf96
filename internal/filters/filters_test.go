package filters

import (
	"encoding/json"
	"testing"

	"trini/internal/genre"
)

func ptr(v float64) *float64 { return &v }

func TestNewYearRangeSwapsInverted(t *testing.T) {
	r := NewYearRange(1999, 1990)
	if r == nil || r.Min != 1990 || r.Max != 1999 {
		t.Fatalf("unexpected range: %+v", r)
	}
	if NewYearRange(0, 0) != nil {
		t.Fatal("expected nil for fully open range")
	}
	open := NewYearRange(2015, 0)
	if !open.Contains(2030) || open.Contains(2000) || open.Distance(2010) != 5 {
		t.Fatalf("unexpected open range behaviour: %+v", open)
	}
}

func TestNewRatingRangeFillsOpenSides(t *testing.T) {
	r := NewRatingRange(ptr(7), nil)
	if r.Min != 7 || r.Max != 10 {
		t.Fatalf("unexpected range: %+v", r)
	}
	r = NewRatingRange(ptr(9), ptr(6))
	if r.Min != 6 || r.Max != 9 {
		t.Fatalf("expected swap, got %+v", r)
	}
	if NewRatingRange(nil, nil) != nil {
		t.Fatal("expected nil without bounds")
	}
}

func TestWithExclusionsCopies(t *testing.T) {
	base := ExtractedFilters{ExcludeIDs: []string{"1"}}
	next := base.WithExclusions([]string{"2", "1", " "})
	if len(base.ExcludeIDs) != 1 {
		t.Fatalf("receiver mutated: %v", base.ExcludeIDs)
	}
	if len(next.ExcludeIDs) != 2 || !next.Excludes("2") {
		t.Fatalf("unexpected exclusions: %v", next.ExcludeIDs)
	}
}

func TestSpecificFilters(t *testing.T) {
	if (ExtractedFilters{Keywords: []string{"one"}}).HasSpecificFilters() {
		t.Fatal("single keyword should not count as specific")
	}
	if !(ExtractedFilters{Keywords: []string{"one", "two"}}).HasSpecificFilters() {
		t.Fatal("two keywords should count as specific")
	}
	if !(ExtractedFilters{Genres: []genre.Code{genre.Drama}}).HasSpecificFilters() {
		t.Fatal("genre should count as specific")
	}
}

func TestPayloadShape(t *testing.T) {
	f := ExtractedFilters{
		Genres:      []genre.Code{genre.Action},
		YearRange:   NewYearRange(1990, 1999),
		RatingRange: NewRatingRange(ptr(7), nil),
		Keywords:    []string{"espacio"},
		Intent:      IntentRecommendation,
		Confidence:  0.7,
		Calibrated:  true,
	}
	raw, err := f.MarshalPayload()
	if err != nil {
		t.Fatalf("MarshalPayload: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	yr, ok := decoded["year_range"].(map[string]any)
	if !ok || yr["min"] != 1990.0 || yr["max"] != 1999.0 {
		t.Fatalf("unexpected year_range: %v", decoded["year_range"])
	}
	if decoded["rating_min"] != 7.0 || decoded["calibrated"] != true {
		t.Fatalf("unexpected payload: %v", decoded)
	}
}

func TestParseIntent(t *testing.T) {
	if got, ok := ParseIntent(" Information "); !ok || got != IntentInformation {
		t.Fatalf("ParseIntent = %q, %v", got, ok)
	}
	if _, ok := ParseIntent("search"); ok {
		t.Fatal("expected unknown intent to fail")
	}
}
