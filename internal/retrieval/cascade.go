package retrieval

import (
	"context"
	"log/slog"
	"time"

	"trini/internal/filters"
	"trini/internal/logging"
	"trini/internal/recommendation"
	"trini/internal/scoring"
	"trini/internal/services"
)

const (
	DefaultLimit = 10
	MaxLimit     = 20
)

// Cascade runs tiers in order until one is sufficient.
type Cascade struct {
	tiers        []Tier
	defaultLimit int
	maxLimit     int
	metrics      *Metrics
	logger       *slog.Logger
}

// Option configures a Cascade.
type Option func(*Cascade)

// WithLimits overrides the default and maximum result counts.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(c *Cascade) {
		if defaultLimit > 0 {
			c.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			c.maxLimit = maxLimit
		}
	}
}

// WithMetrics records tier outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Cascade) {
		c.metrics = m
	}
}

// WithLogger sets the cascade logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cascade) {
		c.logger = logging.NewComponentLogger(logger, "retrieval")
	}
}

// NewCascade builds a controller over tiers, tried in the given order.
func NewCascade(tiers []Tier, opts ...Option) *Cascade {
	c := &Cascade{
		tiers:        append([]Tier(nil), tiers...),
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
		logger:       logging.NewComponentLogger(nil, "retrieval"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.defaultLimit > c.maxLimit {
		c.defaultLimit = c.maxLimit
	}
	return c
}

// Limit normalizes a requested result count.
func (c *Cascade) Limit(limit int) int {
	switch {
	case limit <= 0:
		return c.defaultLimit
	case limit > c.maxLimit:
		return c.maxLimit
	default:
		return limit
	}
}

// Search returns between 1 and limit recommendations, best first, none of
// them excluded by f. It never fails.
func (c *Cascade) Search(ctx context.Context, f filters.ExtractedFilters, limit int) []recommendation.MovieRecommendation {
	start := time.Now()
	defer func() { c.metrics.observeSearch(time.Since(start)) }()

	limit = c.Limit(limit)
	for _, tier := range c.tiers {
		name := tier.Name()
		tierCtx := services.WithTier(ctx, name)
		logger := logging.WithContext(tierCtx, c.logger)

		recs, err := tier.Fetch(tierCtx, f, limit)
		if err != nil {
			c.metrics.tierAttempt(name, OutcomeError)
			logging.WarnWithContext(logger, "retrieval tier failed; advancing cascade", "tier_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, services.Hint(err)),
				logging.String(logging.FieldImpact, "results come from a lower-quality fallback tier"))
			continue
		}

		recs = recommendation.Exclude(recs, f.Excludes)
		c.metrics.results(name, len(recs))
		// A tier that fills a small request is sufficient even below its floor.
		need := min(tier.MinResults(), limit)
		if len(recs) < need {
			c.metrics.tierAttempt(name, OutcomeInsufficient)
			logger.Info("retrieval tier insufficient",
				logging.Args(append(logging.DecisionAttrs("tier_selection", "advance", "too few results"),
					logging.Int("results", len(recs)),
					logging.Int("min_results", need))...)...)
			continue
		}

		c.metrics.tierAttempt(name, OutcomeSuccess)
		logger.Info("retrieval tier selected",
			logging.Args(append(logging.DecisionAttrs("tier_selection", name, "sufficient results"),
				logging.Int("results", len(recs)))...)...)
		return finish(recs, limit)
	}

	logging.ErrorWithContext(c.logger, "every retrieval tier failed; returning emergency placeholder", "cascade_exhausted",
		logging.String(logging.FieldErrorHint, "check catalog, cache and curated configuration"))
	return []recommendation.MovieRecommendation{Emergency()}
}

func finish(recs []recommendation.MovieRecommendation, limit int) []recommendation.MovieRecommendation {
	recommendation.Sort(recs)
	recs = scoring.ApplyFloor(recs, func(r recommendation.MovieRecommendation) float64 { return r.RelevanceScore })
	return recommendation.Truncate(recs, limit)
}
