package recommendation

import (
	"sort"

	"trini/internal/candidate"
)

// Source records which retrieval tier produced a recommendation.
type Source string

const (
	SourcePrimary        Source = "primary"
	SourceCachedFallback Source = "cached_fallback"
	SourceCuratedDefault Source = "curated_default"
	SourceEmergency      Source = "emergency"
)

// MovieRecommendation is a scored movie with its justification.
type MovieRecommendation struct {
	Movie          candidate.Movie `json:"movie"`
	RelevanceScore float64         `json:"relevance_score"`
	Reasoning      string          `json:"reasoning"`
	Source         Source          `json:"source"`
}

// Sort orders recs by descending score. Ties keep their input order.
func Sort(recs []MovieRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
}

// Truncate returns at most limit recommendations.
func Truncate(recs []MovieRecommendation, limit int) []MovieRecommendation {
	if limit >= 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

// Exclude drops recommendations whose movie matches excluded.
func Exclude(recs []MovieRecommendation, excluded func(id string) bool) []MovieRecommendation {
	out := recs[:0:0]
	for _, rec := range recs {
		if excluded(rec.Movie.ID) || excluded(rec.Movie.SourceID) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
