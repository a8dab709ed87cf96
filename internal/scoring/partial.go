package scoring

import (
	"math"
	"strings"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/textutil"
)

const (
	// PartialCreditThreshold is the minimum cache score a cached record
	// needs to stay in the candidate pool.
	PartialCreditThreshold = 0.2
	cachedScoreFactor      = 0.95
	missingCredit          = 0.1
)

// PartialCredit scores a cached record leniently: each requested criterion
// contributes a normalized value, and records that miss a criterion still
// earn a small amount instead of being excluded.
func PartialCredit(m candidate.Movie, f filters.ExtractedFilters) float64 {
	sum, factors := 0.0, 0

	if len(f.Genres) > 0 {
		factors++
		overlap, _ := candidate.GenreOverlap(m, f.Genres)
		if overlap > 0 {
			sum += overlap
		} else {
			sum += missingCredit
		}
	}
	if f.YearRange != nil {
		factors++
		year := m.Year()
		switch {
		case year == 0:
			sum += missingCredit
		case f.YearRange.Contains(year):
			sum++
		default:
			sum += math.Max(1-0.05*float64(f.YearRange.Distance(year)), 0.2)
		}
	}
	if len(f.Keywords) > 0 {
		factors++
		content := textutil.Lower(m.Title + " " + m.Overview)
		found := 0
		for _, k := range f.Keywords {
			if strings.Contains(content, textutil.Lower(k)) {
				found++
			}
		}
		if found > 0 {
			sum += float64(found) / float64(len(f.Keywords))
		} else {
			sum += missingCredit
		}
	}

	factors++
	switch {
	case m.Rating >= 7:
		sum++
	case m.Rating >= 6:
		sum += 0.8
	case m.Rating >= 5:
		sum += 0.6
	default:
		sum += 0.3
	}
	return sum / float64(factors)
}

// Blend combines the relevance score with the cache partial credit.
func Blend(relevance, partial float64) float64 {
	return Clamp((relevance*cachedScoreFactor + partial) / 2)
}
