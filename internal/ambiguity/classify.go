package ambiguity

import (
	"strings"

	"trini/internal/filters"
	"trini/internal/textutil"
)

// Reason names why a query needs clarification.
type Reason string

const (
	ReasonVeryLowConfidence Reason = "very_low_confidence"
	ReasonLowConfidence     Reason = "low_confidence"
	ReasonVagueQuery        Reason = "vague_query"
)

const (
	specificFloor      = 0.2
	compositeThreshold = 0.5
)

// Decision is the outcome of Classify. Exactly one of Proceed or Clarify is
// meaningful: Clarify is nil when the query can be searched.
type Decision struct {
	Clarify *Clarify
}

// Clarify carries the reason and composite score behind a clarification.
type Clarify struct {
	Reason Reason
	Score  float64
}

// Proceed reports whether the query can go straight to search.
func (d Decision) Proceed() bool { return d.Clarify == nil }

// String renders the decision for logs.
func (d Decision) String() string {
	if d.Clarify == nil {
		return "proceed"
	}
	return "clarify:" + string(d.Clarify.Reason)
}

// Classify decides whether filters extracted from query are specific enough
// to search.
func Classify(f filters.ExtractedFilters, query string) Decision {
	if f.HasSpecificFilters() {
		if f.Confidence < specificFloor {
			return clarify(ReasonVeryLowConfidence, 0)
		}
		return Decision{}
	}
	if f.Confidence < proceedConfidence {
		return clarify(ReasonLowConfidence, 0)
	}

	score := compositeScore(f, query)
	if score >= compositeThreshold {
		return clarify(ReasonVagueQuery, score)
	}
	return Decision{}
}

// IsAmbiguous reports whether Classify asks for clarification.
func IsAmbiguous(f filters.ExtractedFilters, query string) bool {
	return !Classify(f, query).Proceed()
}

func compositeScore(f filters.ExtractedFilters, query string) float64 {
	score := 0.0
	if !f.HasAnyFilter() {
		score += 0.4
	}
	if len(f.Genres) == 0 {
		score += 0.2
	}
	if f.YearRange == nil && f.RatingRange == nil {
		score += 0.2
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return score
	}
	tokens := len(strings.Fields(query))
	if tokens <= 2 {
		score += 0.3
	}
	switch hits := textutil.VagueHits(query); {
	case hits >= 2:
		score += 0.3
	case hits == 1 && tokens <= 3:
		score += 0.2
	}
	return score
}

func clarify(reason Reason, score float64) Decision {
	return Decision{Clarify: &Clarify{Reason: reason, Score: score}}
}
