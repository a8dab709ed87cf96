package tmdb

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"trini/internal/candidate"
	"trini/internal/genre"
	"trini/internal/logging"
	"trini/internal/retrieval"
	"trini/internal/services"
)

const (
	maxDiscoverPages = 3
	minVoteCount     = 20
)

// Searcher adapts Client to retrieval.Searcher.
type Searcher struct {
	client    *Client
	minRating float64
	logger    *slog.Logger
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithMinRating sets the discover vote floor used when the request carries
// no rating filter of its own.
func WithMinRating(rating float64) SearcherOption {
	return func(s *Searcher) {
		if rating > 0 {
			s.minRating = rating
		}
	}
}

var _ retrieval.Searcher = (*Searcher)(nil)

// NewSearcher wraps client.
func NewSearcher(client *Client, logger *slog.Logger, opts ...SearcherOption) *Searcher {
	s := &Searcher{client: client, logger: logging.NewComponentLogger(logger, "tmdb")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchCandidates runs keyword search (when keywords are present) followed
// by discover, returning up to p.Limit raw records not on the exclusion list.
func (s *Searcher) SearchCandidates(ctx context.Context, p retrieval.Payload) ([]candidate.Raw, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	excluded := make(map[string]struct{}, len(p.ExcludeIDs))
	for _, id := range p.ExcludeIDs {
		excluded[strings.TrimSpace(id)] = struct{}{}
	}
	seen := make(map[int64]struct{})
	out := make([]candidate.Raw, 0, limit)
	add := func(results []Result) {
		for _, r := range results {
			if len(out) >= limit {
				return
			}
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			if _, skip := excluded[strconv.FormatInt(r.ID, 10)]; skip {
				continue
			}
			out = append(out, toRaw(r))
		}
	}

	if len(p.Keywords) > 0 {
		resp, err := s.client.SearchMovie(ctx, strings.Join(p.Keywords, " "))
		if err != nil {
			if ctx.Err() != nil {
				return nil, s.wrap(err)
			}
			logging.WarnWithContext(s.logger, "keyword search failed; continuing with discover", "tmdb_keyword_search_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, services.Hint(err)),
				logging.String(logging.FieldImpact, "keyword matches may be missing from primary results"))
		} else {
			add(filterResults(resp.Results, p))
		}
	}

	opts := DiscoverOptions{
		GenreIDs:     codesToInts(p.GenreIDs),
		ReleaseFrom:  p.TemporalFilter["primary_release_date.gte"],
		ReleaseTo:    p.TemporalFilter["primary_release_date.lte"],
		MinVote:      p.RatingFilter["vote_average.gte"],
		MinVoteCount: minVoteCount,
	}
	if opts.MinVote == 0 {
		opts.MinVote = s.minRating
	}
	for page := 1; page <= maxDiscoverPages && len(out) < limit; page++ {
		opts.Page = page
		resp, err := s.client.Discover(ctx, opts)
		if err != nil {
			if len(out) > 0 && page > 1 {
				break
			}
			return nil, s.wrap(err)
		}
		add(resp.Results)
		if page >= resp.TotalPages {
			break
		}
	}

	s.logger.Debug("tmdb candidates fetched",
		logging.Int("count", len(out)),
		logging.Int("limit", limit),
		logging.Int("genres", len(p.GenreIDs)),
		logging.Int("keywords", len(p.Keywords)))
	return out, nil
}

func (s *Searcher) wrap(err error) error {
	marker := services.ErrUpstreamUnavailable
	var status *StatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		marker = services.ErrTimeout
	case errors.As(err, &status) && (status.StatusCode == http.StatusUnauthorized || status.StatusCode == http.StatusForbidden):
		marker = services.ErrConfiguration
	}
	return services.Wrap(marker, "search", "tmdb", "primary search failed", err)
}

func filterResults(results []Result, p retrieval.Payload) []Result {
	out := results[:0:0]
	minVote := p.RatingFilter["vote_average.gte"]
	from := p.TemporalFilter["primary_release_date.gte"]
	to := p.TemporalFilter["primary_release_date.lte"]
	for _, r := range results {
		if minVote > 0 && r.VoteAverage < minVote {
			continue
		}
		if from != "" && (r.ReleaseDate == "" || r.ReleaseDate < from) {
			continue
		}
		if to != "" && (r.ReleaseDate == "" || r.ReleaseDate > to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func codesToInts(codes []genre.Code) []int {
	out := make([]int, 0, len(codes))
	for _, c := range codes {
		out = append(out, int(c))
	}
	return out
}

func toRaw(r Result) candidate.Raw {
	genres := make([]any, 0, len(r.GenreIDs))
	for _, g := range r.GenreIDs {
		genres = append(genres, g)
	}
	return candidate.Raw{
		"id":           strconv.FormatInt(r.ID, 10),
		"title":        r.Title,
		"overview":     r.Overview,
		"release_date": r.ReleaseDate,
		"poster_path":  r.PosterPath,
		"genre_ids":    genres,
		"vote_average": r.VoteAverage,
		"vote_count":   r.VoteCount,
		"popularity":   r.Popularity,
	}
}
