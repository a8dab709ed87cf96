package retrieval

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/logging"
	"trini/internal/moviecache"
	"trini/internal/recommendation"
	"trini/internal/scoring"
)

// TierCached names the cache-backed tier.
const TierCached = "cached_fallback"

// CachedTier ranks movies stored under prioritized cache keys.
type CachedTier struct {
	lookup moviecache.Lookup
	kit    Toolkit
	logger *slog.Logger
}

// NewCachedTier reads candidates from lookup.
func NewCachedTier(lookup moviecache.Lookup, kit Toolkit, logger *slog.Logger) *CachedTier {
	return &CachedTier{lookup: lookup, kit: kit, logger: logging.NewComponentLogger(logger, "retrieval")}
}

func (c *CachedTier) Name() string { return TierCached }

func (c *CachedTier) MinResults() int { return 3 }

type credited struct {
	movie   candidate.Movie
	partial float64
}

// Fetch collects up to 3×limit records across the key plan, keeps those with
// enough partial credit and relaxes to top-rated genre matches when that
// leaves too few.
func (c *CachedTier) Fetch(ctx context.Context, f filters.ExtractedFilters, limit int) ([]recommendation.MovieRecommendation, error) {
	raws, used := c.collect(ctx, f, limit*3)
	if len(raws) == 0 {
		return nil, nil
	}

	var pool []credited
	for _, m := range c.kit.Normalizer.NormalizeAll(candidate.Dedupe(raws)) {
		if excluded(f, m) {
			continue
		}
		pool = append(pool, credited{movie: m, partial: scoring.PartialCredit(m, f)})
	}

	kept := make([]credited, 0, len(pool))
	for _, cm := range pool {
		if cm.partial >= scoring.PartialCreditThreshold {
			kept = append(kept, cm)
		}
	}
	slices.SortStableFunc(kept, func(a, b credited) int { return cmp.Compare(b.partial, a.partial) })

	if len(kept) < limit && len(pool) > limit {
		c.logger.Debug("relaxing cached filtering",
			logging.Args(logging.DecisionAttrs("cached_relax", "relax", "partial credit left too few candidates")...)...)
		kept = relax(pool, f, limit)
	}
	if len(kept) > limit {
		kept = kept[:limit]
	}

	recs := make([]recommendation.MovieRecommendation, 0, len(kept))
	for _, cm := range kept {
		rec := c.kit.recommend(cm.movie, f, recommendation.SourceCachedFallback)
		if cm.partial >= scoring.PartialCreditThreshold {
			rec.RelevanceScore = scoring.Blend(rec.RelevanceScore, cm.partial)
		} else {
			rec.RelevanceScore = scoring.Clamp(rec.RelevanceScore * 0.95)
		}
		rec.Reasoning += recommendation.CachedSuffix
		recs = append(recs, rec)
	}
	recommendation.Sort(recs)

	c.logger.Debug("cached candidates ranked",
		logging.Int("keys_used", used),
		logging.Int("records", len(raws)),
		logging.Int("results", len(recs)))
	return recs, nil
}

func (c *CachedTier) collect(ctx context.Context, f filters.ExtractedFilters, want int) ([]candidate.Raw, int) {
	var (
		raws []candidate.Raw
		used int
	)
	for _, key := range CacheKeys(f, c.kit.Genres) {
		if len(raws) >= want || ctx.Err() != nil {
			break
		}
		records, err := c.lookup.Lookup(ctx, key)
		if err != nil {
			c.logger.Debug("cache key lookup failed", logging.String("key", key), logging.Error(err))
			continue
		}
		if len(records) == 0 {
			continue
		}
		raws = append(raws, records...)
		used++
	}
	return raws, used
}

// relax ranks the pool by rating and, when enough of the top 2×limit share a
// requested genre, keeps only those.
func relax(pool []credited, f filters.ExtractedFilters, limit int) []credited {
	byRating := slices.Clone(pool)
	slices.SortStableFunc(byRating, func(a, b credited) int { return cmp.Compare(b.movie.Rating, a.movie.Rating) })
	top := byRating[:min(len(byRating), limit*2)]

	if len(f.Genres) > 0 {
		var matching []credited
		for _, cm := range top {
			if overlap, _ := candidate.GenreOverlap(cm.movie, f.Genres); overlap > 0 {
				matching = append(matching, cm)
			}
		}
		if len(matching) >= limit {
			top = matching
		}
	}
	return top
}
