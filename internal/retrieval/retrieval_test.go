package retrieval

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"trini/internal/candidate"
	"trini/internal/curated"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/recommendation"
	"trini/internal/services"
)

var fixedNow = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

func testKit() Toolkit {
	kit := NewToolkit(genre.Default(), fixedNow)
	kit.Scorer.DisableJitter = true
	return kit
}

func movieRaw(id, title string, rating float64, date string, genres ...genre.Code) candidate.Raw {
	ids := make([]any, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, float64(g))
	}
	return candidate.Raw{
		"id":           id,
		"title":        title,
		"overview":     "Una historia intensa sobre " + title + " que mantiene al espectador atento de principio a fin.",
		"vote_average": rating,
		"vote_count":   float64(1200),
		"release_date": date,
		"genre_ids":    ids,
	}
}

type fakeSearcher struct {
	mu       sync.Mutex
	calls    int
	payloads []Payload
	respond  func(call int, p Payload) ([]candidate.Raw, error)
}

func (s *fakeSearcher) SearchCandidates(_ context.Context, p Payload) ([]candidate.Raw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.payloads = append(s.payloads, p)
	return s.respond(s.calls, p)
}

type mapLookup struct {
	data map[string][]candidate.Raw
	errs map[string]error
	keys []string
}

func (l *mapLookup) Lookup(_ context.Context, key string) ([]candidate.Raw, error) {
	l.keys = append(l.keys, key)
	if err := l.errs[key]; err != nil {
		return nil, err
	}
	return l.data[key], nil
}

type fakeTier struct {
	name     string
	min      int
	recs     []recommendation.MovieRecommendation
	err      error
	gotLimit int
	calls    int
}

func (f *fakeTier) Name() string    { return f.name }
func (f *fakeTier) MinResults() int { return f.min }

func (f *fakeTier) Fetch(_ context.Context, _ filters.ExtractedFilters, limit int) ([]recommendation.MovieRecommendation, error) {
	f.calls++
	f.gotLimit = limit
	return slices.Clone(f.recs), f.err
}

func rec(id string, score float64) recommendation.MovieRecommendation {
	return recommendation.MovieRecommendation{
		Movie:          candidate.Movie{ID: id, SourceID: id, Title: "Película " + id},
		RelevanceScore: score,
		Reasoning:      "porque sí",
		Source:         recommendation.SourcePrimary,
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func noSleep(recorded *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*recorded = append(*recorded, d)
		return nil
	}
}

func TestNewPayload(t *testing.T) {
	minRating := 7.5
	f := filters.ExtractedFilters{
		Genres:      []genre.Code{genre.Horror},
		YearRange:   filters.NewYearRange(1990, 1999),
		RatingRange: filters.NewRatingRange(&minRating, nil),
		Keywords:    []string{"zombi", "apocalipsis", "virus", "ciudad"},
		ExcludeIDs:  []string{"12"},
	}
	p := NewPayload(f, 5)
	if p.Limit != 10 {
		t.Fatalf("limit = %d, want 10", p.Limit)
	}
	if len(p.Keywords) != 3 {
		t.Fatalf("keywords = %v, want first three", p.Keywords)
	}
	if p.TemporalFilter["primary_release_date.gte"] != "1990-01-01" || p.TemporalFilter["primary_release_date.lte"] != "1999-12-31" {
		t.Fatalf("temporal filter = %v", p.TemporalFilter)
	}
	if p.RatingFilter["vote_average.gte"] != 7.5 {
		t.Fatalf("rating filter = %v", p.RatingFilter)
	}
	if !slices.Equal(p.ExcludeIDs, []string{"12"}) {
		t.Fatalf("exclude ids = %v", p.ExcludeIDs)
	}
}

func TestCacheKeysPlan(t *testing.T) {
	f := filters.ExtractedFilters{
		Genres:    []genre.Code{genre.Action, genre.Comedy, genre.Drama},
		YearRange: filters.NewYearRange(2021, 2024),
		Keywords:  []string{"Marvel", "explosiones"},
	}
	keys := CacheKeys(f, genre.Default())
	wantPrefix := []string{
		"movies_all_action", "movies_popular_action", "movies_top_action",
		"movies_all_comedy", "movies_popular_comedy", "movies_top_comedy",
		"movies_recent", "movies_2020s",
		"movies_superhero", "movies_marvel",
		"movies_all_popular",
	}
	if !slices.Equal(keys[:len(wantPrefix)], wantPrefix) {
		t.Fatalf("keys = %v", keys)
	}
	if slices.Contains(keys, "movies_popular_drama") {
		t.Fatalf("only the first two genres should produce keys: %v", keys)
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q in %v", k, keys)
		}
		seen[k] = true
	}
	if keys[len(keys)-1] != "movies_general" {
		t.Fatalf("last key = %q, want movies_general", keys[len(keys)-1])
	}
}

func TestCacheKeysEraAndAccentedHints(t *testing.T) {
	f := filters.ExtractedFilters{
		YearRange: filters.NewYearRange(1985, 1995),
		Keywords:  []string{"animación", "guerra"},
	}
	keys := CacheKeys(f, genre.Default())
	want := []string{"movies_classics", "movies_90s", "movies_animation", "movies_family", "movies_war", "movies_history"}
	if !slices.Equal(keys[:len(want)], want) {
		t.Fatalf("keys = %v", keys)
	}

	modern := CacheKeys(filters.ExtractedFilters{YearRange: filters.NewYearRange(2012, 2030)}, genre.Default())
	if modern[0] != "movies_2010s" || modern[1] != "movies_modern" {
		t.Fatalf("modern keys = %v", modern)
	}
}

func TestPrimaryRetriesWithLinearBackoff(t *testing.T) {
	searcher := &fakeSearcher{respond: func(call int, _ Payload) ([]candidate.Raw, error) {
		if call < 3 {
			return nil, services.Wrap(services.ErrUpstreamUnavailable, "search", "discover", "boom", nil)
		}
		return []candidate.Raw{
			movieRaw("1", "Rápidos", 7.1, "2015-04-01", genre.Action),
			movieRaw("2", "Furiosos", 6.8, "2017-04-01", genre.Action),
			movieRaw("3", "Implacables", 7.9, "2019-04-01", genre.Action),
		}, nil
	}}
	var slept []time.Duration
	metrics := NewMetrics(prometheus.NewRegistry())
	tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{Retries: 2, Backoff: 500 * time.Millisecond, Sleep: noSleep(&slept)}, metrics, nil)

	recs, err := tier.Fetch(context.Background(), filters.ExtractedFilters{Genres: []genre.Code{genre.Action}}, 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3", len(recs))
	}
	if !slices.Equal(slept, []time.Duration{500 * time.Millisecond, time.Second}) {
		t.Fatalf("backoff = %v", slept)
	}
	if got := counterValue(t, metrics.primaryRetries); got != 2 {
		t.Fatalf("retries counter = %v, want 2", got)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].RelevanceScore > recs[i-1].RelevanceScore {
			t.Fatalf("recs not sorted: %+v", recs)
		}
	}
	if recs[0].Source != recommendation.SourcePrimary {
		t.Fatalf("source = %q", recs[0].Source)
	}
}

func TestPrimaryEmptyResultIsNotRetried(t *testing.T) {
	searcher := &fakeSearcher{respond: func(int, Payload) ([]candidate.Raw, error) { return nil, nil }}
	var slept []time.Duration
	tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{Retries: 2, Sleep: noSleep(&slept)}, nil, nil)

	recs, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5)
	if err != nil || len(recs) != 0 {
		t.Fatalf("Fetch = %v, %v", recs, err)
	}
	if searcher.calls != 1 || len(slept) != 0 {
		t.Fatalf("calls = %d, sleeps = %d", searcher.calls, len(slept))
	}
}

func TestPrimaryPermanentFailureIsNotRetried(t *testing.T) {
	for _, marker := range []error{services.ErrConfiguration, services.ErrInput} {
		searcher := &fakeSearcher{respond: func(int, Payload) ([]candidate.Raw, error) {
			return nil, services.Wrap(marker, "search", "tmdb", "rejected", errors.New("401"))
		}}
		var slept []time.Duration
		tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{Retries: 2, Sleep: noSleep(&slept)}, nil, nil)

		_, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5)
		if !errors.Is(err, marker) {
			t.Fatalf("err = %v, want %v", err, marker)
		}
		if searcher.calls != 1 || len(slept) != 0 {
			t.Fatalf("%v: calls = %d, sleeps = %d", marker, searcher.calls, len(slept))
		}
	}
}

func TestPrimaryDedupesWithinOneResponse(t *testing.T) {
	searcher := &fakeSearcher{respond: func(int, Payload) ([]candidate.Raw, error) {
		return []candidate.Raw{
			movieRaw("1", "Rápidos", 7.1, "2015-04-01"),
			movieRaw("1", "Rápidos", 7.1, "2015-04-01"),
			movieRaw("2", "Furiosos", 6.8, "2017-04-01"),
			movieRaw("3", "Implacables", 7.9, "2019-04-01"),
		}, nil
	}}
	tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{}, nil, nil)

	recs, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	seen := map[string]bool{}
	for _, r := range recs {
		if seen[r.Movie.ID] {
			t.Fatalf("duplicate movie %q in %+v", r.Movie.ID, recs)
		}
		seen[r.Movie.ID] = true
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3", len(recs))
	}
}

func TestPrimaryWidensWithComplementaryGenres(t *testing.T) {
	searcher := &fakeSearcher{respond: func(call int, _ Payload) ([]candidate.Raw, error) {
		if call == 1 {
			return []candidate.Raw{movieRaw("10", "Golpe final", 7, "2010-01-01", genre.Action)}, nil
		}
		return []candidate.Raw{
			movieRaw("10", "Golpe final", 7, "2010-01-01", genre.Action),
			movieRaw("11", "Selva perdida", 7.2, "2011-01-01", genre.Action, genre.Adventure),
			movieRaw("12", "Noche tensa", 6.9, "2012-01-01", genre.Action, genre.Thriller),
		}, nil
	}}
	tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{}, nil, nil)

	recs, err := tier.Fetch(context.Background(), filters.ExtractedFilters{Genres: []genre.Code{genre.Action}}, 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if searcher.calls != 2 {
		t.Fatalf("calls = %d, want 2", searcher.calls)
	}
	widened := searcher.payloads[1].GenreIDs
	if !slices.Equal(widened, []genre.Code{genre.Action, genre.Adventure, genre.Thriller}) {
		t.Fatalf("widened genres = %v", widened)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3 after dedupe", len(recs))
	}
}

func TestPrimaryBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	searcher := &fakeSearcher{respond: func(int, Payload) ([]candidate.Raw, error) {
		return nil, errors.New("connection refused")
	}}
	tier := NewPrimaryTier(searcher, testKit(), PrimaryOptions{BreakerFailures: 2, BreakerTimeout: time.Minute}, nil, nil)

	for range 2 {
		if _, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5); err == nil {
			t.Fatal("expected search failure")
		}
	}
	_, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5)
	if !errors.Is(err, services.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want upstream unavailable", err)
	}
	if searcher.calls != 2 {
		t.Fatalf("searcher called %d times, want 2 with the circuit open", searcher.calls)
	}
}

func TestCachedTierRanksByPartialCredit(t *testing.T) {
	lookup := &mapLookup{data: map[string][]candidate.Raw{
		"movies_all_comedy": {
			movieRaw("20", "Risas en casa", 7.5, "2018-01-01", genre.Comedy),
			movieRaw("21", "Boda loca", 6.5, "2016-01-01", genre.Comedy, genre.Romance),
		},
		"movies_popular_comedy": {
			movieRaw("21", "Boda loca", 6.5, "2016-01-01", genre.Comedy, genre.Romance),
			movieRaw("22", "Tormenta", 8, "2014-01-01", genre.Drama),
		},
	}}
	tier := NewCachedTier(lookup, testKit(), nil)
	f := filters.ExtractedFilters{Genres: []genre.Code{genre.Comedy}, ExcludeIDs: []string{"22"}}

	recs, err := tier.Fetch(context.Background(), f, 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recs, want 2", len(recs))
	}
	for _, r := range recs {
		if r.Movie.ID == "22" {
			t.Fatal("excluded movie returned")
		}
		if r.Source != recommendation.SourceCachedFallback {
			t.Fatalf("source = %q", r.Source)
		}
		if !strings.HasSuffix(r.Reasoning, recommendation.CachedSuffix) {
			t.Fatalf("reasoning missing cache suffix: %q", r.Reasoning)
		}
	}
	if recs[0].Movie.ID != "20" {
		t.Fatalf("best cached movie = %q, want 20", recs[0].Movie.ID)
	}
}

func TestCachedTierRelaxesWhenCreditIsLow(t *testing.T) {
	var raws []candidate.Raw
	for i := range 5 {
		raws = append(raws, movieRaw(fmt.Sprint(30+i), fmt.Sprintf("Vieja %d", i), 3+float64(i)*0.2, "1950-01-01", genre.Western))
	}
	lookup := &mapLookup{
		data: map[string][]candidate.Raw{"movies_general": raws},
		errs: map[string]error{"movies_all_horror": errors.New("disk on fire")},
	}
	tier := NewCachedTier(lookup, testKit(), nil)
	f := filters.ExtractedFilters{
		Genres:    []genre.Code{genre.Horror},
		YearRange: filters.NewYearRange(2020, 2024),
		Keywords:  []string{"zombi"},
	}

	recs, err := tier.Fetch(context.Background(), f, 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3", len(recs))
	}
	if lookup.keys[0] != "movies_all_horror" {
		t.Fatalf("first key = %q", lookup.keys[0])
	}
	ids := []string{recs[0].Movie.ID, recs[1].Movie.ID, recs[2].Movie.ID}
	for _, id := range ids {
		if id == "30" || id == "31" {
			t.Fatalf("relaxed set should keep the best rated movies, got %v", ids)
		}
	}
}

func TestCuratedTierHonorsGenresAndExclusions(t *testing.T) {
	catalog := curated.Default()
	tier := NewCuratedTier(catalog, testKit())
	selected := catalog.Select([]genre.Code{genre.Comedy})
	f := filters.ExtractedFilters{Genres: []genre.Code{genre.Comedy}, ExcludeIDs: []string{selected[0].ID}}

	recs, err := tier.Fetch(context.Background(), f, 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(recs) == 0 || len(recs) > 3 {
		t.Fatalf("got %d recs", len(recs))
	}
	for _, r := range recs {
		if r.Movie.MatchesID(selected[0].ID) {
			t.Fatal("excluded curated entry returned")
		}
		if r.Source != recommendation.SourceCuratedDefault {
			t.Fatalf("source = %q", r.Source)
		}
		if r.Reasoning == "" {
			t.Fatal("missing justification")
		}
		if !slices.Contains(r.Movie.GenreCodes, genre.Comedy) {
			t.Fatalf("%q is not a comedy", r.Movie.Title)
		}
	}
}

func TestCascadeAdvancesPastFailedAndInsufficientTiers(t *testing.T) {
	failing := &fakeTier{name: "primary", min: 3, err: errors.New("timeout")}
	thin := &fakeTier{name: "cached_fallback", min: 3, recs: []recommendation.MovieRecommendation{rec("1", 0.9)}}
	good := &fakeTier{name: "curated_default", min: 1, recs: []recommendation.MovieRecommendation{rec("2", 0.4), rec("3", 0.8)}}
	metrics := NewMetrics(prometheus.NewRegistry())
	c := NewCascade([]Tier{failing, thin, good}, WithMetrics(metrics))

	recs := c.Search(context.Background(), filters.ExtractedFilters{}, 5)
	if len(recs) != 2 || recs[0].Movie.ID != "3" || recs[1].Movie.ID != "2" {
		t.Fatalf("recs = %+v", recs)
	}
	checks := []struct {
		tier, outcome string
	}{
		{"primary", OutcomeError},
		{"cached_fallback", OutcomeInsufficient},
		{"curated_default", OutcomeSuccess},
	}
	for _, chk := range checks {
		if got := counterValue(t, metrics.tierAttempts.WithLabelValues(chk.tier, chk.outcome)); got != 1 {
			t.Fatalf("%s/%s = %v, want 1", chk.tier, chk.outcome, got)
		}
	}
}

func TestCascadeStopsAtFirstSufficientTier(t *testing.T) {
	first := &fakeTier{name: "primary", min: 1, recs: []recommendation.MovieRecommendation{rec("1", 0.7)}}
	second := &fakeTier{name: "curated_default", min: 1, recs: []recommendation.MovieRecommendation{rec("2", 0.9)}}
	recs := NewCascade([]Tier{first, second}).Search(context.Background(), filters.ExtractedFilters{}, 5)
	if len(recs) != 1 || recs[0].Movie.ID != "1" || second.calls != 0 {
		t.Fatalf("recs = %+v, second calls = %d", recs, second.calls)
	}
}

func TestCascadeExcludesBeforeCountingResults(t *testing.T) {
	tier := &fakeTier{name: "primary", min: 2, recs: []recommendation.MovieRecommendation{rec("1", 0.9), rec("2", 0.8)}}
	fallback := &fakeTier{name: "curated_default", min: 1, recs: []recommendation.MovieRecommendation{rec("5", 0.5), rec("1", 0.6)}}
	f := filters.ExtractedFilters{ExcludeIDs: []string{"1"}}

	recs := NewCascade([]Tier{tier, fallback}).Search(context.Background(), f, 5)
	if len(recs) != 1 || recs[0].Movie.ID != "5" {
		t.Fatalf("recs = %+v", recs)
	}
}

func TestCascadeReturnsEmergencyWhenAllTiersFail(t *testing.T) {
	tiers := []Tier{
		&fakeTier{name: "primary", min: 3, err: errors.New("down")},
		&fakeTier{name: "cached_fallback", min: 3},
	}
	recs := NewCascade(tiers).Search(context.Background(), filters.ExtractedFilters{}, 5)
	if len(recs) != 1 {
		t.Fatalf("got %d recs, want 1", len(recs))
	}
	got := recs[0]
	if got.Movie.ID != "emergency-1" || got.RelevanceScore != 0 || got.Source != recommendation.SourceEmergency {
		t.Fatalf("emergency = %+v", got)
	}
}

func TestCascadeAppliesScoreFloor(t *testing.T) {
	tier := &fakeTier{name: "primary", min: 1, recs: []recommendation.MovieRecommendation{
		rec("1", 0.9), rec("2", 0.8), rec("3", 0.7), rec("4", 0.2), rec("5", 0.25),
	}}
	recs := NewCascade([]Tier{tier}).Search(context.Background(), filters.ExtractedFilters{}, 10)
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3 above the floor", len(recs))
	}
}

func TestCascadeSmallLimitAcceptsPrimary(t *testing.T) {
	pool := []candidate.Raw{
		movieRaw("1", "Rápidos", 7.1, "2015-04-01"),
		movieRaw("2", "Furiosos", 6.8, "2017-04-01"),
		movieRaw("3", "Implacables", 7.9, "2019-04-01"),
	}
	for _, limit := range []int{1, 2} {
		searcher := &fakeSearcher{respond: func(_ int, p Payload) ([]candidate.Raw, error) {
			return pool[:p.Limit/2], nil
		}}
		primary := NewPrimaryTier(searcher, testKit(), PrimaryOptions{}, nil, nil)
		fallback := &fakeTier{name: TierCached, min: 3, recs: []recommendation.MovieRecommendation{rec("9", 0.9)}}

		recs := NewCascade([]Tier{primary, fallback}).Search(context.Background(), filters.ExtractedFilters{}, limit)
		if len(recs) != limit {
			t.Fatalf("limit %d: got %d recs", limit, len(recs))
		}
		if recs[0].Source != recommendation.SourcePrimary || fallback.calls != 0 {
			t.Fatalf("limit %d: source = %q, fallback calls = %d", limit, recs[0].Source, fallback.calls)
		}
	}
}

func TestCascadeCountsDistinctPrimaryResults(t *testing.T) {
	searcher := &fakeSearcher{respond: func(int, Payload) ([]candidate.Raw, error) {
		return []candidate.Raw{
			movieRaw("1", "Rápidos", 7.1, "2015-04-01"),
			movieRaw("1", "Rápidos", 7.1, "2015-04-01"),
			movieRaw("2", "Furiosos", 6.8, "2017-04-01"),
		}, nil
	}}
	primary := NewPrimaryTier(searcher, testKit(), PrimaryOptions{}, nil, nil)
	fallback := &fakeTier{name: "curated_default", min: 1, recs: []recommendation.MovieRecommendation{rec("9", 0.9)}}

	recs := NewCascade([]Tier{primary, fallback}).Search(context.Background(), filters.ExtractedFilters{}, 5)
	if fallback.calls != 1 || len(recs) != 1 || recs[0].Movie.ID != "9" {
		t.Fatalf("recs = %+v, fallback calls = %d", recs, fallback.calls)
	}
}

func TestCascadeLimits(t *testing.T) {
	tier := &fakeTier{name: "primary", min: 0}
	c := NewCascade([]Tier{tier})
	cases := map[int]int{0: 10, -4: 10, 7: 7, 20: 20, 50: 20}
	for in, want := range cases {
		c.Search(context.Background(), filters.ExtractedFilters{}, in)
		if tier.gotLimit != want {
			t.Fatalf("limit %d became %d, want %d", in, tier.gotLimit, want)
		}
	}

	custom := NewCascade(nil, WithLimits(5, 8))
	if custom.Limit(0) != 5 || custom.Limit(100) != 8 {
		t.Fatalf("custom limits = %d/%d", custom.Limit(0), custom.Limit(100))
	}
}

func TestEmergencyTier(t *testing.T) {
	var tier EmergencyTier
	recs, err := tier.Fetch(context.Background(), filters.ExtractedFilters{}, 5)
	if err != nil || len(recs) != 1 {
		t.Fatalf("Fetch = %v, %v", recs, err)
	}
	e := recs[0]
	if e.Movie.Title != "Servicio Temporalmente No Disponible" || e.Movie.ReleaseDate != "2024-01-01" {
		t.Fatalf("emergency movie = %+v", e.Movie)
	}
	if e.Movie.PosterURL != candidate.PlaceholderPoster {
		t.Fatalf("poster = %q", e.Movie.PosterURL)
	}
}
