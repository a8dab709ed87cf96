package retrieval

import (
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/textutil"
)

var generalCacheKeys = []string{
	"movies_all_popular",
	"movies_top_rated",
	"movies_trending",
	"movies_all_action",
	"movies_all_comedy",
	"movies_all_drama",
	"movies_general",
}

var keywordCacheKeys = []struct {
	needles []string
	keys    []string
}{
	{needles: []string{"marvel", "superhero", "superheroe"}, keys: []string{"movies_superhero", "movies_marvel"}},
	{needles: []string{"disney", "animation", "animacion"}, keys: []string{"movies_animation", "movies_family"}},
	{needles: []string{"war", "guerra"}, keys: []string{"movies_war", "movies_history"}},
}

// CacheKeys returns the cache keys to consult for f, most specific first and
// without duplicates.
func CacheKeys(f filters.ExtractedFilters, table *genre.Table) []string {
	var keys []string

	for _, code := range f.Genres[:min(len(f.Genres), 2)] {
		if slug, ok := table.CacheKey(code); ok {
			keys = append(keys, "movies_all_"+slug, "movies_popular_"+slug, "movies_top_"+slug)
		}
	}

	if yr := f.YearRange; yr != nil {
		switch {
		case yr.Min >= 2020:
			keys = append(keys, "movies_recent", "movies_2020s")
		case yr.Min >= 2010:
			keys = append(keys, "movies_2010s", "movies_modern")
		case yr.Max != 0 && yr.Max <= 2000:
			keys = append(keys, "movies_classics", "movies_90s")
		}
	}

	for _, keyword := range f.Keywords[:min(len(f.Keywords), 2)] {
		folded := textutil.Fold(keyword)
		for _, hint := range keywordCacheKeys {
			if textutil.ContainsAny(folded, hint.needles...) {
				keys = append(keys, hint.keys...)
				break
			}
		}
	}

	keys = append(keys, generalCacheKeys...)
	return dedupeKeys(keys)
}

func dedupeKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
