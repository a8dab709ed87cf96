package extraction

import (
	"fmt"
	"strings"

	"trini/internal/profile"
	"trini/internal/services"
	"trini/internal/textutil"
)

// Sanitize normalizes a raw user query for prompt construction: whitespace is
// collapsed, markup characters are removed, and the result is truncated to
// limit runes. An empty result is an input error.
func Sanitize(query string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxQueryLength
	}
	clean := textutil.CollapseWhitespace(textutil.StripMarkup(textutil.CollapseWhitespace(query)))
	clean = strings.TrimSpace(textutil.Truncate(clean, limit))
	if clean == "" {
		return "", services.Wrap(services.ErrInput, "prompt", "sanitize", "query is empty after sanitization", nil)
	}
	return clean, nil
}

// Prompt renders the filter-extraction prompt for query and user.
func (e *Extractor) Prompt(query string, user *profile.UserContext) (string, error) {
	clean, err := Sanitize(query, e.maxQueryLength)
	if err != nil {
		return "", err
	}
	year := e.now().Year()
	reference := "   " + strings.ReplaceAll(e.genres.Reference(), "\n", "\n   ")
	return fmt.Sprintf(extractionPrompt, clean, user.PromptContext(e.genres), reference, year-3, year), nil
}

// extractionPrompt is filled with the sanitized query, the user context block,
// the genre reference and the bounds of the "recientes" era.
const extractionPrompt = `Eres Trini, un experto asistente de cine que ayuda a encontrar películas perfectas. Tu tarea es extraer información estructurada de consultas en lenguaje natural sobre películas.

CONSULTA DEL USUARIO: "%s"

CONTEXTO DEL USUARIO:
%s

INSTRUCCIONES:
1. Analiza la consulta y extrae filtros de búsqueda de películas
2. Mapea géneros cinematográficos a IDs de TMDB usando esta referencia:
%s

3. Convierte referencias temporales a rangos de años:
   - "años 90" → 1990-1999
   - "recientes" → %d-%d
   - "clásicas" → 1950-1990
   - "década de 2000" → 2000-2009

4. Determina la intención:
   - "recommendation": busca recomendaciones de películas
   - "information": busca información sobre películas específicas
   - "clarification": la consulta es ambigua y necesita aclaración

5. Asigna un puntaje de confianza (0.0-1.0):
   - 0.9-1.0: Consulta muy específica y clara
   - 0.7-0.8: Consulta clara con algunos criterios
   - 0.5-0.6: Consulta moderadamente clara
   - 0.0-0.4: Consulta ambigua o incompleta

RESPONDE ÚNICAMENTE CON UN JSON VÁLIDO EN ESTE FORMATO EXACTO:
{
  "genres": [lista de IDs de género como strings, ej: ["28", "35"]],
  "year_range": {"min": año_mínimo, "max": año_máximo} o null,
  "rating_min": número_decimal o null,
  "keywords": [lista de palabras clave relevantes],
  "intent": "recommendation|information|clarification",
  "confidence": número_decimal_entre_0_y_1
}

EJEMPLOS:
Consulta: "Quiero películas de acción de los 90"
Respuesta: {"genres": ["28"], "year_range": {"min": 1990, "max": 1999}, "rating_min": null, "keywords": ["acción", "años 90"], "intent": "recommendation", "confidence": 0.9}

Consulta: "Algo divertido para ver"
Respuesta: {"genres": ["35"], "year_range": null, "rating_min": null, "keywords": ["divertido"], "intent": "recommendation", "confidence": 0.6}

Consulta: "¿Qué tal está Inception?"
Respuesta: {"genres": [], "year_range": null, "rating_min": null, "keywords": ["Inception"], "intent": "information", "confidence": 0.8}

IMPORTANTE: Responde SOLO con el JSON, sin texto adicional.`
