package curated

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"trini/internal/candidate"
	"trini/internal/filters"
	"trini/internal/genre"
	"trini/internal/textutil"
)

// Entry is a single curated movie.
type Entry struct {
	ID            string
	Title         string
	Overview      string
	Rating        float64
	ReleaseDate   string
	PosterPath    string
	Genres        []genre.Code
	VoteCount     int
	Justification string
}

// Raw renders the entry as a catalog record.
func (e Entry) Raw() candidate.Raw {
	genres := make([]any, 0, len(e.Genres))
	for _, code := range e.Genres {
		genres = append(genres, float64(code))
	}
	return candidate.Raw{
		"id":           e.ID,
		"title":        e.Title,
		"overview":     e.Overview,
		"vote_average": e.Rating,
		"vote_count":   float64(e.VoteCount),
		"release_date": e.ReleaseDate,
		"poster_path":  e.PosterPath,
		"genre_ids":    genres,
	}
}

func (e Entry) year() int {
	if len(e.ReleaseDate) < 4 {
		return 0
	}
	y, _ := strconv.Atoi(e.ReleaseDate[:4])
	return y
}

// Catalog is the read-only curated collection.
type Catalog struct {
	genres  *genre.Table
	entries []Entry
	general []Entry
}

// Default builds the built-in catalog.
func Default() *Catalog {
	return New(genre.Default(), slices.Concat(spanishComedies, genreHighlights, classics), slices.Concat(generalPicks, classics))
}

// New builds a catalog from genre-matched entries and a general fallback set.
func New(table *genre.Table, entries, general []Entry) *Catalog {
	if table == nil {
		table = genre.Default()
	}
	return &Catalog{genres: table, entries: slices.Clone(entries), general: slices.Clone(general)}
}

// Len reports the number of distinct entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.All())
}

// All returns every distinct entry.
func (c *Catalog) All() []Entry {
	return dedupe(slices.Concat(c.entries, c.general))
}

// Select returns entries sharing any requested genre, falling back to the
// general set when nothing matches or no genre was requested.
func (c *Catalog) Select(requested []genre.Code) []Entry {
	var out []Entry
	if len(requested) > 0 {
		for _, e := range c.entries {
			if overlaps(e.Genres, requested) {
				out = append(out, e)
			}
		}
	}
	if len(out) == 0 {
		out = c.general
	}
	return dedupe(out)
}

// Justify explains why e was chosen. Entries with a fixed justification use
// it; others are described from the request.
func (c *Catalog) Justify(e Entry, f filters.ExtractedFilters) string {
	if e.Justification != "" {
		return fmt.Sprintf(e.Justification, e.Title, e.Rating) + "."
	}
	return c.contextual(e, f)
}

func (c *Catalog) contextual(e Entry, f filters.ExtractedFilters) string {
	var reasons []string
	if len(f.Genres) > 0 {
		names := c.genres.Names(head(f.Genres, 2))
		if len(names) == 1 {
			reasons = append(reasons, fmt.Sprintf("es exactamente el tipo de %s que buscas", names[0]))
		} else {
			reasons = append(reasons, fmt.Sprintf("combina %s como pediste", strings.Join(names, " y ")))
		}
	}

	year := e.year()
	for _, keyword := range f.Keywords {
		lowered := textutil.Lower(keyword)
		switch {
		case year == 0:
		case strings.Contains(lowered, "oscar"):
			switch {
			case year >= 2020:
				reasons = append(reasons, fmt.Sprintf("es una película reciente del %d que ha recibido reconocimiento", year))
			case year >= 2010:
				reasons = append(reasons, fmt.Sprintf("es del %d y ha sido aclamada por la crítica", year))
			default:
				reasons = append(reasons, fmt.Sprintf("es un clásico del %d que sigue siendo relevante", year))
			}
		case isYear(lowered):
			if year >= 2020 {
				reasons = append(reasons, fmt.Sprintf("es una película contemporánea del %d", year))
			} else {
				reasons = append(reasons, fmt.Sprintf("aunque es del %d, sigue siendo muy relevante", year))
			}
		}
	}

	switch {
	case e.Rating >= 8:
		reasons = append(reasons, fmt.Sprintf("tiene una valoración excepcional de %.1f/10", e.Rating))
	case e.Rating >= 7:
		reasons = append(reasons, fmt.Sprintf("está muy bien valorada con %.1f/10", e.Rating))
	case e.Rating >= 6:
		reasons = append(reasons, fmt.Sprintf("tiene buenas críticas (%.1f/10)", e.Rating))
	}

	overview := textutil.Lower(e.Overview)
	switch {
	case textutil.ContainsAny(overview, "oscar", "premio", "ganador", "festival"):
		reasons = append(reasons, "ha recibido importantes reconocimientos")
	case textutil.ContainsAny(overview, "basada en", "historia real", "hechos reales"):
		reasons = append(reasons, "está basada en hechos reales")
	}

	switch len(reasons) {
	case 0:
		return fmt.Sprintf("'%s' es una excelente opción según tus criterios de búsqueda.", e.Title)
	case 1:
		return fmt.Sprintf("Te recomiendo '%s' porque %s.", e.Title, reasons[0])
	case 2:
		return fmt.Sprintf("Te recomiendo '%s' porque %s y %s.", e.Title, reasons[0], reasons[1])
	default:
		return fmt.Sprintf("Te recomiendo '%s' porque %s, %s, además %s.", e.Title, reasons[0], reasons[1], reasons[2])
	}
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	y, err := strconv.Atoi(s)
	return err == nil && y >= filters.MinYear && y <= filters.MaxYear
}

func overlaps(a, b []genre.Code) bool {
	for _, code := range a {
		if slices.Contains(b, code) {
			return true
		}
	}
	return false
}

func dedupe(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

func head[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}
