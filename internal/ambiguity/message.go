package ambiguity

import (
	"strings"

	"trini/internal/filters"
)

const (
	greetingMessage = "¡Hola! Soy Trini, tu asistente de películas. Para darte mejores recomendaciones, ¿podrías ser más específico?"
	moreInfoMessage = "Necesito un poco más de información para encontrar las películas perfectas para ti."
	generalMessage  = "Tu consulta es un poco general. ¿Podrías darme más detalles?"

	genreSuggestion  = "¿Qué género prefieres? (acción, comedia, drama, terror, etc.)"
	eraSuggestion    = "¿De qué época? (años 90, recientes, clásicas, etc.)"
	themeSuggestion  = "¿Algo en particular que te guste? (superhéroes, romance, aventuras, etc.)"
	genericFollowUp  = " ¿Podrías decirme qué tipo de películas te gustan?"
	maxSuggestions   = 2
	suggestionPrefix = " Por ejemplo: "
	suggestionJoiner = " o "
)

// ClarificationMessage builds the Spanish follow-up question for ambiguous
// filters, suggesting what is missing.
func ClarificationMessage(f filters.ExtractedFilters) string {
	var base string
	switch {
	case f.Confidence < 0.2:
		base = greetingMessage
	case f.Confidence < 0.4:
		base = moreInfoMessage
	default:
		base = generalMessage
	}

	var suggestions []string
	if len(f.Genres) == 0 {
		suggestions = append(suggestions, genreSuggestion)
	}
	if f.YearRange == nil {
		suggestions = append(suggestions, eraSuggestion)
	}
	if f.RatingRange == nil && len(f.Keywords) == 0 {
		suggestions = append(suggestions, themeSuggestion)
	}
	if len(suggestions) == 0 {
		return base + genericFollowUp
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return base + suggestionPrefix + strings.Join(suggestions, suggestionJoiner)
}
