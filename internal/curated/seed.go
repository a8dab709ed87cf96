package curated

import (
	"slices"

	"trini/internal/candidate"
)

const (
	topRatedFloor = 8.0
	classicCutoff = 2000
)

// SeedRecords groups the catalog under the cache keys the cached retrieval
// tier looks up, so an empty cache can be primed with known-good data.
func (c *Catalog) SeedRecords() map[string][]candidate.Raw {
	out := make(map[string][]candidate.Raw)
	add := func(key string, e Entry) {
		out[key] = append(out[key], e.Raw())
	}
	entries := c.All()
	for _, e := range entries {
		for _, code := range e.Genres {
			key, ok := c.genres.CacheKey(code)
			if !ok {
				continue
			}
			add("movies_all_"+key, e)
			add("movies_popular_"+key, e)
			if e.Rating >= topRatedFloor {
				add("movies_top_"+key, e)
			}
		}
		year := e.year()
		switch {
		case year >= 2020:
			add("movies_recent", e)
			add("movies_2020s", e)
		case year >= 2010:
			add("movies_2010s", e)
			add("movies_modern", e)
		case year > 0 && year <= classicCutoff:
			add("movies_classics", e)
			if year >= 1990 {
				add("movies_90s", e)
			}
		}
		add("movies_general", e)
	}

	byRating := slices.Clone(entries)
	slices.SortStableFunc(byRating, func(a, b Entry) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	for _, e := range byRating {
		if e.Rating >= topRatedFloor {
			add("movies_top_rated", e)
		}
		add("movies_all_popular", e)
	}
	return out
}
