package textutil

import "strings"

var stopWords = toSet(
	"el", "la", "los", "las", "un", "una", "de", "del", "en", "con", "por", "para",
	"que", "se", "me", "te", "le", "nos", "les", "y", "o", "pero", "si", "no",
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "from", "up", "about", "into", "through", "during", "before",
	"after", "above", "below", "between", "among", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "do", "does", "did", "will",
	"would", "could", "should", "may", "might", "must", "can", "shall",
	"qué", "tal", "está", "más", "muy", "sin", "sobre", "como", "cómo", "este",
	"esta", "estos", "estas", "eso", "esa", "ese", "hay", "unos", "unas", "uno",
	"al", "lo", "durante", "antes", "después", "despues", "entre", "desde",
	"hasta", "hacia", "tras", "contra", "mediante", "encima", "debajo",
)

var vagueTerms = []string{
	"algo", "something", "cualquier", "anything", "no sé", "don't know",
	"bueno", "good", "entretenimiento", "entertainment", "película", "movie",
	"film", "ver", "watch", "recomendación", "recommendation",
}

// vagueWords adds inflected forms and filler verbs that never make useful keywords.
var vagueWords = toSet(append([]string{
	"películas", "peliculas", "pelicula", "movies", "films", "recomendaciones",
	"recomendacion", "quiero", "busco", "dame",
}, vagueTerms...)...)

func toSet(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

// IsStopWord reports whether token is a Spanish or English function word.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}

// IsVagueWord reports whether a single token is a vague request marker.
func IsVagueWord(token string) bool {
	_, ok := vagueWords[strings.ToLower(token)]
	return ok
}

// VagueHits counts vague terms appearing as substrings of the lowercased query.
func VagueHits(query string) int {
	lowered := Lower(query)
	hits := 0
	for _, term := range vagueTerms {
		if strings.Contains(lowered, term) {
			hits++
		}
	}
	return hits
}
