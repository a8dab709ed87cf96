package recommendation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/textutil"
)

// CachedSuffix is appended to reasoning for movies served from the cache.
const CachedSuffix = " Esta recomendación proviene de nuestra selección curada de películas populares."

const recentWindow = 3

var (
	spanishProduction = textutil.WordRegexp(`español|española|madrid|barcelona|méxico|argentina`)
	sagaMarker        = textutil.WordRegexp(`saga|parte|capítulo|2|3|ii|iii`)
	awardMarker       = textutil.WordRegexp(`oscar|premio|ganador|festival|cannes|goya`)
	directorMarker    = textutil.WordRegexp(`dirigida por|director|directora`)
	trueStoryMarker   = textutil.WordRegexp(`basada en|historia real|hechos reales`)
)

// Reasoner explains in Spanish why a movie fits the request.
type Reasoner struct {
	genres *genre.Table
	now    func() time.Time
}

// NewReasoner constructs a Reasoner. A nil clock uses time.Now.
func NewReasoner(table *genre.Table, now func() time.Time) *Reasoner {
	if table == nil {
		table = genre.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Reasoner{genres: table, now: now}
}

// Reason builds the justification for m given the requested filters.
func (r *Reasoner) Reason(m candidate.Movie, f filters.ExtractedFilters) string {
	var reasons []string
	add := func(reason string) {
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}
	if len(f.Genres) > 0 {
		add(r.genreReason(m, f.Genres))
	}
	if f.YearRange != nil {
		add(r.yearReason(m, f.YearRange))
	}
	add(qualityReason(m))
	if len(f.Keywords) > 0 {
		add(contentReason(m, f.Keywords))
	}
	add(uniqueReason(m))

	switch len(reasons) {
	case 0:
		return fmt.Sprintf("'%s' coincide con tus criterios de búsqueda.", m.Title)
	case 1:
		return fmt.Sprintf("Te recomiendo '%s' porque %s.", m.Title, reasons[0])
	case 2:
		return fmt.Sprintf("Te recomiendo '%s' porque %s y %s.", m.Title, reasons[0], reasons[1])
	default:
		return fmt.Sprintf("Te recomiendo '%s' porque %s, %s, además %s.", m.Title, reasons[0], reasons[1], reasons[2])
	}
}

func (r *Reasoner) genreReason(m candidate.Movie, requested []genre.Code) string {
	requested = head(requested, 2)
	var names, matched []string
	for _, code := range requested {
		name := r.genres.Name(code)
		names = append(names, name)
		if slices.Contains(m.GenreCodes, code) {
			matched = append(matched, name)
		}
	}
	switch {
	case len(matched) == 1:
		return fmt.Sprintf("es exactamente el tipo de %s que buscas", matched[0])
	case len(matched) == 2:
		return fmt.Sprintf("combina perfectamente %s y %s como pediste", matched[0], matched[1])
	case len(names) == 1:
		return fmt.Sprintf("es una excelente película de %s", names[0])
	default:
		return fmt.Sprintf("coincide con los géneros que solicitaste (%s)", strings.Join(names, ", "))
	}
}

func (r *Reasoner) yearReason(m candidate.Movie, yr *filters.YearRange) string {
	year := m.Year()
	if year == 0 {
		return ""
	}
	switch {
	case yr.Min != 0 && yr.Max != 0:
		switch {
		case yr.Min == 1990 && yr.Max == 1999:
			return fmt.Sprintf("es de los años 90 como pediste (%d)", year)
		case yr.Min == 2000 && yr.Max == 2009:
			return fmt.Sprintf("es de la década del 2000 (%d)", year)
		case yr.Min == 2010 && yr.Max == 2019:
			return fmt.Sprintf("es de la década del 2010 (%d)", year)
		case yr.Max-yr.Min <= 10:
			return fmt.Sprintf("es del período %d-%d que solicitaste (%d)", yr.Min, yr.Max, year)
		default:
			return fmt.Sprintf("está dentro del rango de años que pediste (%d)", year)
		}
	case yr.Min != 0:
		if yr.Min >= r.now().Year()-recentWindow {
			return fmt.Sprintf("es reciente como pediste (%d)", year)
		}
		return fmt.Sprintf("es posterior a %d como solicitaste (%d)", yr.Min, year)
	case yr.Max != 0:
		if yr.Max <= 1990 {
			return fmt.Sprintf("es un clásico como pediste (%d)", year)
		}
		return fmt.Sprintf("es anterior a %d como solicitaste (%d)", yr.Max, year)
	}
	return fmt.Sprintf("es del año %d", year)
}

func qualityReason(m candidate.Movie) string {
	switch {
	case m.Rating >= 8.5:
		return fmt.Sprintf("tiene una valoración excepcional de %.1f/10", m.Rating)
	case m.Rating >= 8.0:
		return fmt.Sprintf("está muy bien valorada con %.1f/10", m.Rating)
	case m.Rating >= 7.5:
		return fmt.Sprintf("tiene excelentes críticas (%.1f/10)", m.Rating)
	case m.Rating >= 7.0:
		return fmt.Sprintf("está bien valorada por los espectadores (%.1f/10)", m.Rating)
	case m.VoteCount >= 5000:
		return "es muy popular entre los usuarios"
	case m.VoteCount >= 1000:
		return "ha sido vista por muchas personas"
	}
	return ""
}

func contentReason(m candidate.Movie, keywords []string) string {
	title := textutil.Lower(m.Title)
	overview := textutil.Lower(m.Overview)
	var inTitle, inOverview []string
	for _, k := range keywords {
		lowered := textutil.Lower(k)
		switch {
		case strings.Contains(title, lowered):
			inTitle = append(inTitle, k)
		case strings.Contains(overview, lowered):
			inOverview = append(inOverview, k)
		}
	}
	switch {
	case len(inTitle) == 1:
		return fmt.Sprintf("trata específicamente sobre %s como buscas", inTitle[0])
	case len(inTitle) > 1:
		return fmt.Sprintf("aborda los temas de %s que mencionaste", strings.Join(head(inTitle, 2), " y "))
	case len(inOverview) == 1:
		return fmt.Sprintf("incluye elementos de %s", inOverview[0])
	case len(inOverview) > 1:
		return fmt.Sprintf("contiene los elementos que buscas: %s", strings.Join(head(inOverview, 2), ", "))
	}
	return ""
}

func uniqueReason(m candidate.Movie) string {
	switch {
	case spanishProduction.MatchString(m.Title):
		return "es una producción en español como prefieres"
	case sagaMarker.MatchString(m.Title):
		return "forma parte de una saga reconocida"
	case awardMarker.MatchString(m.Overview):
		return "ha recibido reconocimientos importantes"
	case directorMarker.MatchString(m.Overview):
		return "está dirigida por un cineasta reconocido"
	case trueStoryMarker.MatchString(m.Overview):
		return "está basada en hechos reales"
	}
	return ""
}

func head[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}
