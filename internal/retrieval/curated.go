package retrieval

import (
	"context"

	"trini/internal/curated"
	"trini/internal/filters"
	"trini/internal/recommendation"
)

// TierCurated names the static catalog tier.
const TierCurated = "curated_default"

// CuratedTier recommends from the static curated catalog.
type CuratedTier struct {
	catalog *curated.Catalog
	kit     Toolkit
}

// NewCuratedTier serves entries from catalog.
func NewCuratedTier(catalog *curated.Catalog, kit Toolkit) *CuratedTier {
	return &CuratedTier{catalog: catalog, kit: kit}
}

func (c *CuratedTier) Name() string { return TierCurated }

func (c *CuratedTier) MinResults() int { return 1 }

// Fetch scores the genre-matched (or general) entries and attaches each
// entry's justification.
func (c *CuratedTier) Fetch(_ context.Context, f filters.ExtractedFilters, limit int) ([]recommendation.MovieRecommendation, error) {
	var recs []recommendation.MovieRecommendation
	for _, entry := range c.catalog.Select(f.Genres) {
		m, err := c.kit.Normalizer.Normalize(entry.Raw())
		if err != nil || excluded(f, m) {
			continue
		}
		rec := c.kit.recommend(m, f, recommendation.SourceCuratedDefault)
		rec.Reasoning = c.catalog.Justify(entry, f)
		recs = append(recs, rec)
	}
	recommendation.Sort(recs)
	return recommendation.Truncate(recs, limit), nil
}
