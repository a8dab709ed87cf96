package retrieval

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/logging"
	"trini/internal/recommendation"
	"trini/internal/services"
)

// TierPrimary names the live search tier.
const TierPrimary = "primary"

// PrimaryOptions tunes the primary tier.
type PrimaryOptions struct {
	Retries         int
	Backoff         time.Duration
	MinValidated    int
	BreakerFailures int
	BreakerTimeout  time.Duration
	// Sleep waits between retries; nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// PrimaryTier searches the live catalog.
type PrimaryTier struct {
	searcher Searcher
	kit      Toolkit
	opts     PrimaryOptions
	breaker  *breaker
	metrics  *Metrics
	logger   *slog.Logger
}

// NewPrimaryTier wraps searcher with retries and a circuit breaker.
func NewPrimaryTier(searcher Searcher, kit Toolkit, opts PrimaryOptions, metrics *Metrics, logger *slog.Logger) *PrimaryTier {
	logger = logging.NewComponentLogger(logger, "retrieval")
	if opts.MinValidated <= 0 {
		opts.MinValidated = 3
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return &PrimaryTier{
		searcher: searcher,
		kit:      kit,
		opts:     opts,
		breaker:  newBreaker("tmdb", opts.BreakerFailures, opts.BreakerTimeout, logger),
		metrics:  metrics,
		logger:   logger,
	}
}

func (p *PrimaryTier) Name() string { return TierPrimary }

func (p *PrimaryTier) MinResults() int { return p.opts.MinValidated }

// Fetch runs the search, screens the candidates and, for genre queries that
// come back thin, retries once with complementary genres added.
func (p *PrimaryTier) Fetch(ctx context.Context, f filters.ExtractedFilters, limit int) ([]recommendation.MovieRecommendation, error) {
	payload := NewPayload(f, limit)
	raws, err := p.search(ctx, payload)
	if err != nil {
		return nil, err
	}
	raws = candidate.Dedupe(raws)
	movies := p.screen(raws, f)

	if len(movies) < p.opts.MinValidated && len(f.Genres) > 0 {
		if extra := p.kit.Genres.Complementary(f.Genres); len(extra) > 0 {
			widened := payload.WithGenres(append(append([]genre.Code(nil), f.Genres...), extra...))
			p.logger.Debug("widening primary search with complementary genres",
				logging.Args(logging.DecisionAttrs("genre_widening", "widen", "too few screened candidates")...)...)
			more, err := p.search(ctx, widened)
			if err == nil {
				movies = p.screen(candidate.Dedupe(append(raws, more...)), f)
			}
		}
	}

	recs := make([]recommendation.MovieRecommendation, 0, len(movies))
	for _, m := range movies {
		if excluded(f, m) {
			continue
		}
		recs = append(recs, p.kit.recommend(m, f, recommendation.SourcePrimary))
	}
	recommendation.Sort(recs)
	return recs, nil
}

func (p *PrimaryTier) screen(raws []candidate.Raw, f filters.ExtractedFilters) []candidate.Movie {
	return candidate.Screen(p.kit.Normalizer.NormalizeAll(raws), f)
}

func (p *PrimaryTier) search(ctx context.Context, payload Payload) ([]candidate.Raw, error) {
	raws, err := p.breaker.Execute(func() ([]candidate.Raw, error) {
		return p.searchWithRetry(ctx, payload)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, services.Wrap(services.ErrUpstreamUnavailable, "search", TierPrimary, "circuit open", err)
	}
	return raws, err
}

func (p *PrimaryTier) searchWithRetry(ctx context.Context, payload Payload) ([]candidate.Raw, error) {
	var lastErr error
	for attempt := 0; attempt <= p.opts.Retries; attempt++ {
		raws, err := p.searcher.SearchCandidates(ctx, payload)
		if err == nil {
			return raws, nil
		}
		lastErr = err
		if permanent(err) || attempt == p.opts.Retries || ctx.Err() != nil {
			break
		}
		p.metrics.primaryRetry()
		p.logger.Debug("primary search failed; retrying",
			logging.Int("attempt", attempt+1),
			logging.Error(err))
		if err := p.opts.Sleep(ctx, p.opts.Backoff*time.Duration(attempt+1)); err != nil {
			break
		}
	}
	return nil, lastErr
}

// permanent reports failures that another attempt cannot fix.
func permanent(err error) bool {
	return !services.Recoverable(err) || errors.Is(err, services.ErrConfiguration)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
