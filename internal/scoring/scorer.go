package scoring

import (
	"hash/fnv"
	"math"

	"trini/internal/candidate"
	"trini/internal/filters"
)

const (
	genreWeight      = 0.35
	ratingWeight     = 0.25
	yearWeight       = 0.20
	keywordWeight    = 0.15
	popularityWeight = 0.05

	jitterSpan       = 0.15
	lowRatingCeiling = 4.0
	lowRatingPenalty = 0.7

	// MinScore is the floor for every scored candidate.
	MinScore = 0.1
	// MaxScore is the ceiling for every scored candidate.
	MaxScore = 1.0
)

// ratingCurve is the piecewise linear mapping from rating to score.
var ratingCurve = [][2]float64{{0, 0.3}, {5, 0.4}, {6, 0.6}, {7, 0.8}, {8, 1}, {10, 1}}

// Breakdown exposes the individual component scores.
type Breakdown struct {
	Genre      float64 `json:"genre"`
	Rating     float64 `json:"rating"`
	Year       float64 `json:"year"`
	Keyword    float64 `json:"keyword"`
	Popularity float64 `json:"popularity"`
	Jitter     float64 `json:"jitter"`
	Total      float64 `json:"total"`
}

// Scorer computes relevance scores. The zero value is ready to use.
type Scorer struct {
	// DisableJitter turns off the per-movie tie-breaker.
	DisableJitter bool
}

// Score returns the relevance of m for f in [MinScore, MaxScore].
func (s Scorer) Score(m candidate.Movie, f filters.ExtractedFilters) float64 {
	return s.Explain(m, f).Total
}

// Explain returns the full component breakdown behind Score.
func (s Scorer) Explain(m candidate.Movie, f filters.ExtractedFilters) Breakdown {
	b := Breakdown{
		Genre:      genreScore(m, f),
		Rating:     RatingScore(m.Rating),
		Year:       yearScore(m, f.YearRange),
		Keyword:    candidate.KeywordRelevance(m, f.Keywords),
		Popularity: popularityScore(m.Rating, m.VoteCount),
	}
	total := b.Genre*genreWeight +
		b.Rating*ratingWeight +
		b.Year*yearWeight +
		b.Keyword*keywordWeight +
		b.Popularity*popularityWeight
	if !s.DisableJitter {
		b.Jitter = Jitter(m.ID, m.Title)
		total += b.Jitter
	}
	if m.Rating > 0 && m.Rating < lowRatingCeiling {
		total *= lowRatingPenalty
	}
	b.Total = Clamp(total)
	return b
}

// Jitter derives a stable offset in [-0.075, 0.075] from the movie identity.
func Jitter(id, title string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id + title))
	seed := float64(h.Sum32() % 100)
	return (seed/99 - 0.5) * jitterSpan
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score float64) float64 {
	if math.IsNaN(score) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, score))
}

func genreScore(m candidate.Movie, f filters.ExtractedFilters) float64 {
	if len(f.Genres) == 0 {
		return 0.5
	}
	if overlap, ok := candidate.GenreOverlap(m, f.Genres); ok {
		return overlap
	}
	return 0.9
}

// RatingScore maps a 0-10 rating onto the quality curve.
func RatingScore(rating float64) float64 {
	if rating <= ratingCurve[0][0] {
		return ratingCurve[0][1]
	}
	for i := 1; i < len(ratingCurve); i++ {
		x0, y0 := ratingCurve[i-1][0], ratingCurve[i-1][1]
		x1, y1 := ratingCurve[i][0], ratingCurve[i][1]
		if rating <= x1 {
			return y0 + (rating-x0)/(x1-x0)*(y1-y0)
		}
	}
	return ratingCurve[len(ratingCurve)-1][1]
}

func yearScore(m candidate.Movie, r *filters.YearRange) float64 {
	if r == nil {
		return 0.5
	}
	year := m.Year()
	if year == 0 {
		return 0.3
	}
	if r.Contains(year) {
		return 1
	}
	return math.Max(1-0.1*float64(r.Distance(year)), 0.1)
}

func popularityScore(rating float64, votes int) float64 {
	switch {
	case rating >= 7 && votes >= 1000:
		return 1
	case rating >= 6.5 && votes >= 500:
		return 0.8
	case rating >= 6 && votes >= 100:
		return 0.6
	case votes >= 50:
		return 0.4
	default:
		return 0.2
	}
}
