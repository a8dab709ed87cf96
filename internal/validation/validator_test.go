package validation

import (
	"errors"
	"reflect"
	"testing"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/services"
)

func newValidator() *Validator { return New(genre.Default()) }

func TestValidateWellFormedPayload(t *testing.T) {
	got, err := newValidator().Validate(`{"genres":[28,"878"],"year_range":{"min":1990,"max":1999},"rating_min":7,"keywords":["robots"],"intent":"Recommendation","confidence":0.85}`)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !reflect.DeepEqual(got.Genres, []genre.Code{genre.Action, genre.SciFi}) {
		t.Fatalf("genres = %v", got.Genres)
	}
	if got.YearRange == nil || got.YearRange.Min != 1990 || got.YearRange.Max != 1999 {
		t.Fatalf("year range = %+v", got.YearRange)
	}
	if got.RatingRange == nil || got.RatingRange.Min != 7 || got.RatingRange.Max != 10 {
		t.Fatalf("rating range = %+v", got.RatingRange)
	}
	if got.Intent != filters.IntentRecommendation || got.Confidence != 0.85 {
		t.Fatalf("intent/confidence = %s/%v", got.Intent, got.Confidence)
	}
}

func TestValidateRejectsStructuralProblems(t *testing.T) {
	cases := map[string]any{
		"confidence out of range": `{"genres":[],"intent":"recommendation","confidence":1.5}`,
		"genres not list":         `{"genres":"28","intent":"recommendation","confidence":0.5}`,
		"missing intent":          `{"genres":[],"confidence":0.5}`,
		"intent not string":       map[string]any{"genres": []any{}, "intent": 3.0, "confidence": 0.5},
		"missing confidence":      `{"genres":[],"intent":"recommendation"}`,
		"prose only":              "no tengo ni idea",
		"empty":                   "   ",
		"nil":                     nil,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newValidator().Validate(raw)
			if !errors.Is(err, services.ErrMalformedPayload) {
				t.Fatalf("expected malformed payload error, got %v", err)
			}
		})
	}
}

func TestValidateRepairsFields(t *testing.T) {
	payload := map[string]any{
		"genres":     []any{"acción", 0.0, 28.0, "desconocido", 123456.0, 27.5},
		"year_range": map[string]any{"min": 1999.0, "max": 1990.0},
		"rating_min": 15.0,
		"keywords":   []any{"a", "  espacio  ", 4.0, "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"},
		"intent":     "whatever",
		"confidence": "0.7",
	}
	got, err := newValidator().Validate(payload)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !reflect.DeepEqual(got.Genres, []genre.Code{genre.Action}) {
		t.Fatalf("genres = %v", got.Genres)
	}
	if got.YearRange == nil || got.YearRange.Min != 1990 || got.YearRange.Max != 1999 {
		t.Fatalf("expected swapped years, got %+v", got.YearRange)
	}
	if got.RatingRange != nil {
		t.Fatalf("expected out-of-scale rating dropped, got %+v", got.RatingRange)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"espacio"}) {
		t.Fatalf("keywords = %v", got.Keywords)
	}
	if got.Intent != filters.IntentRecommendation {
		t.Fatalf("unknown intent should default to recommendation, got %s", got.Intent)
	}
	if got.Confidence != 0.7 {
		t.Fatalf("confidence = %v", got.Confidence)
	}
}

func TestValidateUnparseableConfidence(t *testing.T) {
	got, err := newValidator().Validate(map[string]any{"genres": []any{}, "intent": "recommendation", "confidence": "alta"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.Confidence != unparseableConfidence {
		t.Fatalf("confidence = %v", got.Confidence)
	}
}

func TestValidateYearFieldsIndependently(t *testing.T) {
	got, err := newValidator().Validate(`{"genres":[],"year_range":{"min":1850,"max":2005},"intent":"recommendation","confidence":0.6}`)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.YearRange == nil || got.YearRange.Min != 0 || got.YearRange.Max != 2005 {
		t.Fatalf("year range = %+v", got.YearRange)
	}
}

func TestValidateRecoversEmbeddedPayload(t *testing.T) {
	cases := map[string]string{
		"fence":  "Claro, aquí tienes:\n```json\n{\"genres\":[35],\"intent\":\"recommendation\",\"confidence\":0.8}\n```\nEspero que ayude.",
		"braces": "Resultado {\"genres\":[35],\"keywords\":[\"fin {de} semana\"],\"intent\":\"recommendation\",\"confidence\":0.8} listo",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := newValidator().Validate(text)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !reflect.DeepEqual(got.Genres, []genre.Code{genre.Comedy}) {
				t.Fatalf("genres = %v", got.Genres)
			}
		})
	}
}

func TestValidatePayloadRoundTrip(t *testing.T) {
	v := newValidator()
	first, err := v.Validate(`{"genres":[18,10749],"year_range":{"min":2000},"rating_min":6.5,"rating_max":9,"keywords":["amor"],"intent":"recommendation","confidence":0.75,"exclude_ids":["550"]}`)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	second, err := v.Validate(first.Payload())
	if err != nil {
		t.Fatalf("Validate payload: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip changed filters:\n%+v\n%+v", first, second)
	}
	text, err := first.MarshalPayload()
	if err != nil {
		t.Fatalf("MarshalPayload: %v", err)
	}
	third, err := v.Validate(text)
	if err != nil {
		t.Fatalf("Validate text: %v", err)
	}
	if !reflect.DeepEqual(first, third) {
		t.Fatalf("text round trip changed filters:\n%+v\n%+v", first, third)
	}
}

func TestBalancedSpansIgnoresQuotedBraces(t *testing.T) {
	spans := balancedSpans(`x {"a":"}"} y {"b":{"c":1}}`)
	want := []string{`{"a":"}"}`, `{"b":{"c":1}}`}
	if !reflect.DeepEqual(spans, want) {
		t.Fatalf("spans = %q", spans)
	}
}
