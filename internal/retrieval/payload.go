package retrieval

import (
	"context"
	"fmt"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
)

// Payload is the primary search request derived from ExtractedFilters.
type Payload struct {
	GenreIDs       []genre.Code       `json:"genreIds"`
	ExcludeIDs     []string           `json:"excludeIds"`
	Limit          int                `json:"limit"`
	TemporalFilter map[string]string  `json:"temporalFilter,omitempty"`
	RatingFilter   map[string]float64 `json:"ratingFilter,omitempty"`
	Keywords       []string           `json:"keywords"`
}

// Searcher runs a primary catalog search.
type Searcher interface {
	SearchCandidates(ctx context.Context, p Payload) ([]candidate.Raw, error)
}

const payloadKeywordLimit = 3

// NewPayload builds the search request for f, asking for twice the
// requested number of results so the quality gate has room to filter.
func NewPayload(f filters.ExtractedFilters, limit int) Payload {
	p := Payload{
		GenreIDs:   append([]genre.Code(nil), f.Genres...),
		ExcludeIDs: append([]string{}, f.ExcludeIDs...),
		Limit:      limit * 2,
		Keywords:   append([]string{}, f.Keywords[:min(len(f.Keywords), payloadKeywordLimit)]...),
	}
	if yr := f.YearRange; yr != nil {
		p.TemporalFilter = map[string]string{}
		if yr.Min != 0 {
			p.TemporalFilter["primary_release_date.gte"] = fmt.Sprintf("%d-01-01", yr.Min)
		}
		if yr.Max != 0 {
			p.TemporalFilter["primary_release_date.lte"] = fmt.Sprintf("%d-12-31", yr.Max)
		}
	}
	if rr := f.RatingRange; rr != nil && rr.Min > 0 {
		p.RatingFilter = map[string]float64{"vote_average.gte": rr.Min}
	}
	return p
}

// WithGenres returns a copy whose genre list is codes.
func (p Payload) WithGenres(codes []genre.Code) Payload {
	out := p
	out.GenreIDs = append([]genre.Code(nil), codes...)
	return out
}
