package candidate

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/textutil"
)

const (
	minTitleLength        = 2
	contentGenreThreshold = 0.3
	keywordThreshold      = 0.1
	contentTermWeight     = 0.3
	titleKeywordWeight    = 1.0
	overviewKeywordWeight = 0.6
	neutralKeywordScore   = 0.5
)

// contentTerms are words whose presence in a title or overview suggests a
// genre when the record carries no genre metadata.
var contentTerms = map[genre.Code][]string{
	genre.Comedy:    {"comedia", "comedy", "cómico", "divertido", "gracioso", "humor", "risas", "funny", "hilarious"},
	genre.Action:    {"acción", "action", "lucha", "combate", "batalla", "fight", "battle", "guerra", "war"},
	genre.Drama:     {"drama", "dramático", "emotional", "familia", "family", "vida", "life"},
	genre.Horror:    {"terror", "horror", "miedo", "scary", "monstruo", "monster", "fantasma", "ghost"},
	genre.Thriller:  {"thriller", "suspenso", "suspense", "misterio", "mystery", "crimen", "crime"},
	genre.Romance:   {"romance", "romántico", "amor", "love", "romantic", "pareja", "couple"},
	genre.SciFi:     {"ciencia ficción", "sci-fi", "futuro", "future", "espacio", "space", "robot", "alien"},
	genre.Adventure: {"aventura", "adventure", "viaje", "journey", "exploración", "exploration"},
	genre.Animation: {"animación", "animation", "animado", "animated", "dibujos", "cartoon"},
	genre.Fantasy:   {"fantasía", "fantasy", "magia", "magic", "mágico", "magical", "fantástico"},
}

// GenreOverlap returns the fraction of requested genres present in the
// movie's metadata, and whether metadata was available at all.
func GenreOverlap(m Movie, requested []genre.Code) (float64, bool) {
	if len(requested) == 0 || len(m.GenreCodes) == 0 {
		return 0, len(m.GenreCodes) > 0
	}
	matches := 0
	for _, code := range requested {
		if slices.Contains(m.GenreCodes, code) {
			matches++
		}
	}
	return float64(matches) / float64(len(requested)), true
}

// ContentGenreMatch estimates genre fit from title and overview text.
// It returns 1 when no genre was requested.
func ContentGenreMatch(m Movie, requested []genre.Code) float64 {
	if len(requested) == 0 {
		return 1
	}
	content := textutil.Lower(m.Title + " " + m.Overview)
	total := 0.0
	for _, code := range requested {
		matches := 0
		for _, term := range contentTerms[code] {
			if strings.Contains(content, term) {
				matches++
			}
		}
		total += math.Min(float64(matches)*contentTermWeight, 1)
	}
	return math.Min(total/float64(len(requested)), 1)
}

// KeywordRelevance weighs title hits above overview hits, averaged over the
// keywords. It returns 0.5 when no keywords were requested.
func KeywordRelevance(m Movie, keywords []string) float64 {
	if len(keywords) == 0 {
		return neutralKeywordScore
	}
	title := textutil.Lower(m.Title)
	overview := textutil.Lower(m.Overview)
	weighted := 0.0
	for _, keyword := range keywords {
		k := textutil.Lower(keyword)
		switch {
		case strings.Contains(title, k):
			weighted += titleKeywordWeight
		case strings.Contains(overview, k):
			weighted += overviewKeywordWeight
		}
	}
	return math.Min(weighted/float64(len(keywords)), 1)
}

// Screen drops candidates that clearly do not answer the query: missing
// titles, genre requests the movie shows no sign of, and keyword requests
// with no textual relevance.
func Screen(movies []Movie, f filters.ExtractedFilters) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if utf8.RuneCountInString(strings.TrimSpace(m.Title)) < minTitleLength {
			continue
		}
		if len(f.Genres) > 0 {
			overlap, _ := GenreOverlap(m, f.Genres)
			if overlap == 0 && ContentGenreMatch(m, f.Genres) < contentGenreThreshold {
				continue
			}
		}
		if len(f.Keywords) > 0 && KeywordRelevance(m, f.Keywords) < keywordThreshold {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Dedupe collapses records sharing an id, keeping the more complete one in
// the position of its first occurrence. Records without an id are keyed by
// title.
func Dedupe(raws []Raw) []Raw {
	index := make(map[string]int, len(raws))
	out := make([]Raw, 0, len(raws))
	for _, raw := range raws {
		key := raw.String(idKeys...)
		if key == "" {
			key = "title:" + textutil.Fold(raw.String(titleKeys...))
		}
		if pos, seen := index[key]; seen {
			if raw.completeness() > out[pos].completeness() {
				out[pos] = raw
			}
			continue
		}
		index[key] = len(out)
		out = append(out, raw)
	}
	return out
}
