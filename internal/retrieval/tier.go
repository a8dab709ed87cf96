package retrieval

import (
	"context"
	"time"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/recommendation"
	"trini/internal/scoring"
)

// Tier is one strategy in the cascade.
type Tier interface {
	Name() string
	// MinResults is the number of results the tier must produce for the
	// cascade to stop at it.
	MinResults() int
	Fetch(ctx context.Context, f filters.ExtractedFilters, limit int) ([]recommendation.MovieRecommendation, error)
}

// Toolkit bundles the read-only helpers shared by tiers.
type Toolkit struct {
	Genres     *genre.Table
	Normalizer *candidate.Normalizer
	Scorer     scoring.Scorer
	Reasoner   *recommendation.Reasoner
}

// NewToolkit builds a Toolkit over table. now drives era wording in
// reasoning; nil means time.Now.
func NewToolkit(table *genre.Table, now func() time.Time) Toolkit {
	return Toolkit{
		Genres:     table,
		Normalizer: candidate.NewNormalizer(table),
		Reasoner:   recommendation.NewReasoner(table, now),
	}
}

func (k Toolkit) recommend(m candidate.Movie, f filters.ExtractedFilters, source recommendation.Source) recommendation.MovieRecommendation {
	return recommendation.MovieRecommendation{
		Movie:          m,
		RelevanceScore: k.Scorer.Score(m, f),
		Reasoning:      k.Reasoner.Reason(m, f),
		Source:         source,
	}
}

func excluded(f filters.ExtractedFilters, m candidate.Movie) bool {
	return f.Excludes(m.ID) || f.Excludes(m.SourceID)
}
