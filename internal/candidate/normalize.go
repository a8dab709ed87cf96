package candidate

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode/utf8"

	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/services"
)

const (
	minOverviewLength = 10
	numericIDModulus  = 999999
)

var (
	idKeys      = []string{"id", "tmdbId", "movieId"}
	titleKeys   = []string{"title", "mediaTitle", "name"}
	posterKeys  = []string{"posterPath", "poster", "mediaPosterPath", "poster_path"}
	ratingKeys  = []string{"rating", "vote_average", "voteAverage"}
	dateKeys    = []string{"release_date", "releaseDate", "year"}
	overviewKey = []string{"overview", "mediaOverview"}
	voteKeys    = []string{"vote_count", "voteCount"}
)

// Normalizer converts raw records into canonical movies.
type Normalizer struct {
	genres *genre.Table
}

// NewNormalizer constructs a Normalizer over the shared genre table.
func NewNormalizer(table *genre.Table) *Normalizer {
	if table == nil {
		table = genre.Default()
	}
	return &Normalizer{genres: table}
}

// Normalize fills every canonical field of raw. Only a record with neither a
// title nor an id is rejected, with services.ErrDataQuality.
func (n *Normalizer) Normalize(raw Raw) (Movie, error) {
	sourceID := raw.String(idKeys...)
	title := raw.String(titleKeys...)
	if sourceID == "" && title == "" {
		return Movie{}, services.Wrap(services.ErrDataQuality, "candidate", "normalize", "record has neither title nor id", nil)
	}
	if title == "" {
		title = UntitledTitle
	}
	if sourceID == "" {
		sourceID = fmt.Sprintf("unknown-%d", stableHash(title+"|"+raw.String(overviewKey...)+"|"+raw.String(dateKeys...))%10000)
	}

	movie := Movie{
		ID:          numericID(sourceID),
		Title:       title,
		PosterURL:   posterURL(raw),
		ReleaseDate: validDate(raw.String(dateKeys...)),
		GenreCodes:  raw.GenreCodes(n.genres),
		VoteCount:   raw.Int(voteKeys...),
		SourceID:    sourceID,
	}
	if rating, ok := raw.Float(ratingKeys...); ok && rating >= filters.MinRating && rating <= filters.MaxRating {
		movie.Rating = rating
	}
	if movie.VoteCount < 0 {
		movie.VoteCount = 0
	}

	overview := raw.String(overviewKey...)
	if utf8.RuneCountInString(overview) < minOverviewLength {
		overview = n.synthesizeOverview(movie)
	}
	movie.Overview = overview
	return movie, nil
}

// NormalizeAll normalizes records, skipping those that cannot form a movie.
func (n *Normalizer) NormalizeAll(raws []Raw) []Movie {
	out := make([]Movie, 0, len(raws))
	for _, raw := range raws {
		movie, err := n.Normalize(raw)
		if err != nil {
			continue
		}
		out = append(out, movie)
	}
	return out
}

func (n *Normalizer) synthesizeOverview(m Movie) string {
	var names []string
	for _, code := range head(m.GenreCodes, 2) {
		if info, ok := n.genres.Info(code); ok {
			names = append(names, info.Name)
		}
	}
	yearText := ""
	if year := m.Year(); year > 0 {
		yearText = fmt.Sprintf(" del año %d", year)
	}
	if len(names) > 0 {
		return fmt.Sprintf("Una película de %s%s titulada '%s'.", strings.Join(names, " y "), yearText, m.Title)
	}
	return fmt.Sprintf("Película%s titulada '%s'. Información adicional no disponible temporalmente.", yearText, m.Title)
}

// numericID keeps digit ids and hashes anything else to a stable number.
func numericID(id string) string {
	if isDigits(id) {
		if n, err := strconv.ParseUint(id, 10, 64); err == nil {
			return strconv.FormatUint(n, 10)
		}
	}
	return strconv.FormatUint(uint64(stableHash(id)%numericIDModulus), 10)
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

func stableHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func posterURL(raw Raw) string {
	for _, key := range posterKeys {
		poster := raw.String(key)
		switch {
		case poster == "":
			continue
		case strings.HasPrefix(poster, "http"):
			return poster
		case strings.HasPrefix(poster, "/"):
			return PosterBaseURL + poster
		}
	}
	return PlaceholderPoster
}

func validDate(date string) string {
	year := yearOf(date)
	if year < filters.MinYear || year > filters.MaxYear {
		return ""
	}
	return date
}

func head[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}
