package candidate

import (
	"strconv"

	"trini/internal/genre"
)

const (
	// PosterBaseURL prefixes TMDB relative poster paths.
	PosterBaseURL = "https://image.tmdb.org/t/p/w500"
	// PlaceholderPoster is used when a record carries no usable poster.
	PlaceholderPoster = "https://via.placeholder.com/500x750/2c3e50/ecf0f1?text=Sin+Poster"
	// UntitledTitle replaces a missing title.
	UntitledTitle = "Título no disponible"
)

// Movie is the canonical, fully populated movie record.
type Movie struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Overview    string       `json:"overview"`
	PosterURL   string       `json:"poster_url"`
	Rating      float64      `json:"rating"`
	ReleaseDate string       `json:"release_date"`
	GenreCodes  []genre.Code `json:"genre_ids"`
	VoteCount   int          `json:"vote_count"`
	SourceID    string       `json:"source_id"`
}

// Year returns the release year, or 0 when the date is unknown.
func (m Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// MatchesID reports whether id names this movie under either identity.
func (m Movie) MatchesID(id string) bool {
	return id != "" && (id == m.ID || id == m.SourceID)
}

// Raw renders the movie back into record form, as stored by the cache.
func (m Movie) Raw() Raw {
	genres := make([]any, 0, len(m.GenreCodes))
	for _, code := range m.GenreCodes {
		genres = append(genres, float64(code))
	}
	return Raw{
		"id":           m.SourceID,
		"title":        m.Title,
		"overview":     m.Overview,
		"poster_path":  m.PosterURL,
		"vote_average": m.Rating,
		"release_date": m.ReleaseDate,
		"genre_ids":    genres,
		"vote_count":   float64(m.VoteCount),
	}
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
