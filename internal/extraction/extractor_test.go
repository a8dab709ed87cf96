package extraction

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/profile"
	"trini/internal/services"
)

func newTestExtractor() *Extractor {
	clock := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return New(genre.Default(), WithClock(clock))
}

func TestExtractActionNineties(t *testing.T) {
	f := newTestExtractor().Extract("películas de acción de los 90")
	if !slices.Contains(f.Genres, genre.Action) {
		t.Fatalf("expected action genre, got %v", f.Genres)
	}
	if f.YearRange == nil || f.YearRange.Min != 1990 || f.YearRange.Max != 1999 {
		t.Fatalf("unexpected year range: %+v", f.YearRange)
	}
	if f.Intent != filters.IntentRecommendation {
		t.Fatalf("unexpected intent: %s", f.Intent)
	}
	if f.Confidence < 0.6 {
		t.Fatalf("expected confidence >= 0.6, got %v", f.Confidence)
	}
}

func TestExtractVagueQueryAsksForClarification(t *testing.T) {
	f := newTestExtractor().Extract("algo")
	if f.Intent != filters.IntentClarification {
		t.Fatalf("unexpected intent: %s", f.Intent)
	}
	if f.Confidence > 0.2 {
		t.Fatalf("expected confidence <= 0.2, got %v", f.Confidence)
	}
}

func TestExtractDecadePrecedesBareYear(t *testing.T) {
	e := newTestExtractor()
	cases := []struct {
		query    string
		min, max int
	}{
		{"thrillers de los años 2000", 2000, 2009},
		{"comedias de los 1980s", 1980, 1989},
		{"drama de 1995 por favor", 1993, 1997},
		{"estrenos recientes de terror", 2022, 2025},
		{"películas clásicas en blanco y negro", 1950, 1990},
		{"algo de la década del 2010", 2010, 2019},
	}
	for _, tc := range cases {
		f := e.Extract(tc.query)
		if f.YearRange == nil || f.YearRange.Min != tc.min || f.YearRange.Max != tc.max {
			t.Fatalf("%q: got %+v, want %d-%d", tc.query, f.YearRange, tc.min, tc.max)
		}
	}
}

func TestExtractRatingExplicitBeatsAdjective(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract("una película excelente de 6.5 estrellas")
	if f.RatingRange == nil || f.RatingRange.Min != 6.5 {
		t.Fatalf("expected explicit rating to win, got %+v", f.RatingRange)
	}
	f = e.Extract("quiero un drama excelente")
	if f.RatingRange == nil || f.RatingRange.Min != 8.0 {
		t.Fatalf("expected adjective rating, got %+v", f.RatingRange)
	}
	f = e.Extract("terror con rating de 15")
	if f.RatingRange == nil || f.RatingRange.Min != 10 {
		t.Fatalf("expected explicit rating clamped to 10, got %+v", f.RatingRange)
	}
}

func TestExtractSpanishComedyException(t *testing.T) {
	f := newTestExtractor().Extract("quiero ver una comedia española")
	if !slices.Equal(f.Genres, []genre.Code{genre.Comedy}) {
		t.Fatalf("unexpected genres: %v", f.Genres)
	}
	if f.Confidence != 0.8 {
		t.Fatalf("unexpected confidence: %v", f.Confidence)
	}
	if !slices.Equal(f.Keywords, []string{"comedia", "española", "español"}) {
		t.Fatalf("unexpected keywords: %v", f.Keywords)
	}
}

func TestExtractInformationIntent(t *testing.T) {
	f := newTestExtractor().Extract("¿Qué tal está Inception?")
	if f.Intent != filters.IntentInformation {
		t.Fatalf("unexpected intent: %s", f.Intent)
	}
	if !slices.Contains(f.Keywords, "inception") || f.Confidence != 0.4 {
		t.Fatalf("unexpected keywords/confidence: %v %v", f.Keywords, f.Confidence)
	}
}

func TestExtractKeywordsDropStopWordsAndCap(t *testing.T) {
	f := newTestExtractor().Extract("naves espaciales con robots gigantes y alienígenas que invaden planetas lejanos durante guerras galácticas eternas brutales oscuras")
	if len(f.Keywords) != filters.MaxKeywords {
		t.Fatalf("expected %d keywords, got %d (%v)", filters.MaxKeywords, len(f.Keywords), f.Keywords)
	}
	for _, k := range f.Keywords {
		if k == "con" || k == "que" || k == "durante" {
			t.Fatalf("stop word %q kept", k)
		}
	}
	if f.Keywords[0] != "naves" {
		t.Fatalf("expected order preserved, got %v", f.Keywords)
	}
}

func TestExtractAlwaysYieldsFilterOrClarification(t *testing.T) {
	e := newTestExtractor()
	for _, q := range []string{"a", "??", "ok", "no sé", "algo bueno", "movie", "la de ayer", "x y z w"} {
		f := e.Extract(q)
		if f.Confidence < 0 || f.Confidence > 1 {
			t.Fatalf("%q: confidence out of range %v", q, f.Confidence)
		}
		if !f.HasAnyFilter() && f.Intent != filters.IntentClarification {
			t.Fatalf("%q: no filters but intent %s", q, f.Intent)
		}
	}
}

func TestSanitize(t *testing.T) {
	got, err := Sanitize("  <b>películas</b>   {de} [acción]\\ ", 0)
	if err != nil {
		t.Fatalf("Sanitize: %v", err)
	}
	if got != "bpelículas/b de acción" {
		t.Fatalf("unexpected sanitized query %q", got)
	}
	long, err := Sanitize(strings.Repeat("á", 600), 0)
	if err != nil || len([]rune(long)) != DefaultMaxQueryLength {
		t.Fatalf("expected truncation to %d runes, got %d (%v)", DefaultMaxQueryLength, len([]rune(long)), err)
	}
	if _, err := Sanitize(" <> {} ", 0); !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestPromptEmbedsQueryAndContext(t *testing.T) {
	e := newTestExtractor()
	user := &profile.UserContext{PreferredGenres: []genre.Code{genre.Horror}}
	prompt, err := e.Prompt("terror   de los 80", user)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	for _, fragment := range []string{`CONSULTA DEL USUARIO: "terror de los 80"`, "- Géneros preferidos: terror", `"recientes" → 2022-2025`, "   - 878: ciencia ficción", "   - 10749: romance"} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected %q in prompt", fragment)
		}
	}
	if _, err := e.Prompt("   ", nil); !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected input error for blank query, got %v", err)
	}
}
