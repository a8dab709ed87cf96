package scoring

import (
	"math"
	"testing"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRatingScoreCurve(t *testing.T) {
	cases := map[float64]float64{0: 0.3, 2.5: 0.35, 5: 0.4, 5.5: 0.5, 6: 0.6, 7.5: 0.9, 8: 1, 9.3: 1, 10: 1}
	for rating, want := range cases {
		if got := RatingScore(rating); !approx(got, want) {
			t.Fatalf("RatingScore(%v) = %v, want %v", rating, got, want)
		}
	}
}

func TestExplainComponents(t *testing.T) {
	m := candidate.Movie{
		ID:          "603",
		Title:       "The Matrix",
		Overview:    "Un hacker descubre que la realidad es una simulación controlada por máquinas.",
		Rating:      8.2,
		ReleaseDate: "1999-03-30",
		GenreCodes:  []genre.Code{genre.Action, genre.SciFi},
		VoteCount:   25000,
	}
	f := filters.ExtractedFilters{
		Genres:    []genre.Code{genre.Action, genre.Comedy},
		YearRange: filters.NewYearRange(1990, 1997),
		Keywords:  []string{"matrix", "máquinas"},
	}
	b := Scorer{DisableJitter: true}.Explain(m, f)
	if !approx(b.Genre, 0.5) || !approx(b.Rating, 1) || !approx(b.Year, 0.8) || !approx(b.Keyword, 0.8) || !approx(b.Popularity, 1) {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	want := 0.5*0.35 + 1*0.25 + 0.8*0.20 + 0.8*0.15 + 1*0.05
	if !approx(b.Total, want) {
		t.Fatalf("total = %v, want %v", b.Total, want)
	}
}

func TestScoreNeutralDefaults(t *testing.T) {
	m := candidate.Movie{ID: "1", Title: "Sin datos", VoteCount: 10}
	b := Scorer{DisableJitter: true}.Explain(m, filters.ExtractedFilters{Genres: []genre.Code{genre.Drama}, YearRange: filters.NewYearRange(2000, 0)})
	if b.Genre != 0.9 || b.Year != 0.3 || b.Keyword != 0.5 || b.Popularity != 0.2 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestLowRatingPenaltyAndClamp(t *testing.T) {
	s := Scorer{DisableJitter: true}
	low := candidate.Movie{ID: "2", Title: "Mala", Rating: 3}
	unrated := candidate.Movie{ID: "3", Title: "Mala", Rating: 0}
	if s.Score(low, filters.ExtractedFilters{}) >= s.Score(unrated, filters.ExtractedFilters{}) {
		t.Fatal("expected penalty for ratings below 4")
	}
	if Clamp(-1) != MinScore || Clamp(3) != MaxScore || Clamp(math.NaN()) != MinScore {
		t.Fatal("clamp out of bounds")
	}
}

func TestJitterIsStableAndBounded(t *testing.T) {
	first := Jitter("550", "Fight Club")
	if first != Jitter("550", "Fight Club") {
		t.Fatal("jitter not deterministic")
	}
	for i := 0; i < 500; i++ {
		j := Jitter(string(rune('a'+i%26)), string(rune('A'+i%7)))
		if j < -0.075-1e-12 || j > 0.075+1e-12 {
			t.Fatalf("jitter %v out of bounds", j)
		}
	}
	m := candidate.Movie{ID: "550", Title: "Fight Club", Rating: 8.4, VoteCount: 27000}
	for i := 0; i < 3; i++ {
		score := Scorer{}.Score(m, filters.ExtractedFilters{})
		if score < MinScore || score > MaxScore {
			t.Fatalf("score %v out of bounds", score)
		}
	}
}

func TestPartialCredit(t *testing.T) {
	m := candidate.Movie{Title: "Guerra en el espacio", Overview: "batallas", Rating: 6.5, ReleaseDate: "2004-01-01", GenreCodes: []genre.Code{genre.SciFi}}
	f := filters.ExtractedFilters{
		Genres:    []genre.Code{genre.Horror},
		YearRange: filters.NewYearRange(2010, 2019),
		Keywords:  []string{"espacio", "zombis"},
	}
	got := PartialCredit(m, f)
	want := (0.1 + 0.7 + 0.5 + 0.8) / 4
	if !approx(got, want) {
		t.Fatalf("partial credit = %v, want %v", got, want)
	}
	if blended := Blend(0.8, 0.6); !approx(blended, (0.8*0.95+0.6)/2) {
		t.Fatalf("blend = %v", blended)
	}
}

func TestApplyFloor(t *testing.T) {
	id := func(v float64) float64 { return v }
	got := ApplyFloor([]float64{0.9, 0.8, 0.7, 0.3, 0.2}, id)
	if len(got) != 3 {
		t.Fatalf("expected low scores dropped, got %v", got)
	}
	kept := ApplyFloor([]float64{0.9, 0.3, 0.2, 0.1, 0.1}, id)
	if len(kept) != 5 {
		t.Fatalf("expected floor skipped when too few survive, got %v", kept)
	}
	short := ApplyFloor([]float64{0.9, 0.1}, id)
	if len(short) != 2 {
		t.Fatalf("expected short lists untouched, got %v", short)
	}
}
