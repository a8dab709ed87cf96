package ambiguity

import (
	"math"

	"trini/internal/filters"
)

const (
	keywordSignal = 0.1
	// wideYearSpan is the span beyond which a year filter barely narrows
	// the catalog.
	wideYearSpan      = 30
	wideSpanCeiling   = 0.6
	noSignalCeiling   = 0.2
	weakSignalCeiling = 0.4
	boostFraction     = 0.1
	maxBoost          = 0.1
	proceedConfidence = 0.5
)

// Signals weighs the extracted evidence: one point per genre, year, or rating
// filter, plus a tenth of a point per keyword.
func Signals(f filters.ExtractedFilters) float64 {
	score := 0.0
	if len(f.Genres) > 0 {
		score++
	}
	if f.YearRange != nil {
		score++
	}
	if f.RatingRange != nil {
		score++
	}
	score += float64(len(f.Keywords)) * keywordSignal
	return score
}

// Calibrate adjusts confidence and intent once. Filters already marked as
// calibrated are returned unchanged.
func Calibrate(f filters.ExtractedFilters) filters.ExtractedFilters {
	if f.Calibrated {
		return f
	}
	out := f.Clone()
	confidence := out.Confidence
	signals := Signals(out)

	switch {
	case signals == 0:
		confidence = math.Min(confidence, noSignalCeiling)
		out.Intent = filters.IntentClarification
	case signals < 1:
		confidence = math.Min(confidence, weakSignalCeiling)
	case signals >= 2:
		confidence = math.Min(1, confidence+math.Min(confidence*boostFraction, maxBoost))
	}
	if out.YearRange != nil && out.YearRange.Span() > wideYearSpan {
		confidence = math.Min(confidence, wideSpanCeiling)
	}
	if confidence < proceedConfidence && out.Intent == filters.IntentRecommendation {
		out.Intent = filters.IntentClarification
	}

	out.Confidence = filters.ClampConfidence(confidence)
	out.Calibrated = true
	return out
}
