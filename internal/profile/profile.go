package profile

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"trini/internal/genre"
)

// MaxRecentMovies bounds the recent-recommendation history.
const MaxRecentMovies = 20

// UserContext carries user preferences and history. The JSON field names match
// the stored session documents.
type UserContext struct {
	UserID           string       `json:"userId"`
	PreferredGenres  []genre.Code `json:"preferredGenres"`
	RecentMovies     []string     `json:"recentMovies"`
	DislikedGenres   []genre.Code `json:"dislikedGenres"`
	PreferredDecades []string     `json:"preferredDecades"`
	RatingPreference *float64     `json:"ratingPreference,omitempty"`
	Language         string       `json:"languagePreference"`
	RoomID           string       `json:"currentRoomId,omitempty"`
	RoomVotedMovies  []string     `json:"roomVotedMovies"`
}

// Load reads a UserContext from a JSON file.
func Load(path string) (*UserContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var ctx UserContext
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &ctx, nil
}

// AddPreferredGenre records a genre preference once.
func (u *UserContext) AddPreferredGenre(code genre.Code) {
	if !slices.Contains(u.PreferredGenres, code) {
		u.PreferredGenres = append(u.PreferredGenres, code)
	}
}

// AddRecentMovie records a recommendation, newest first, keeping the last
// MaxRecentMovies entries.
func (u *UserContext) AddRecentMovie(id string) {
	id = strings.TrimSpace(id)
	if id == "" || slices.Contains(u.RecentMovies, id) {
		return
	}
	u.RecentMovies = append([]string{id}, u.RecentMovies...)
	if len(u.RecentMovies) > MaxRecentMovies {
		u.RecentMovies = u.RecentMovies[:MaxRecentMovies]
	}
}

// HasRoom reports whether the user is voting in a room.
func (u *UserContext) HasRoom() bool {
	return u != nil && strings.TrimSpace(u.RoomID) != ""
}

// ShouldExclude reports whether id was recently recommended or already voted.
func (u *UserContext) ShouldExclude(id string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.RecentMovies, id) || slices.Contains(u.RoomVotedMovies, id)
}

// ExcludeList merges recent and room-voted ids without duplicates.
func (u *UserContext) ExcludeList() []string {
	if u == nil {
		return nil
	}
	out := make([]string, 0, len(u.RecentMovies)+len(u.RoomVotedMovies))
	for _, id := range slices.Concat(u.RecentMovies, u.RoomVotedMovies) {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// PromptContext renders the user-context block of the extraction prompt.
func (u *UserContext) PromptContext(table *genre.Table) string {
	if u == nil {
		return noContext
	}
	var parts []string
	if len(u.PreferredGenres) > 0 {
		parts = append(parts, "- Géneros preferidos: "+strings.Join(table.Names(head(u.PreferredGenres, 5)), ", "))
	}
	if len(u.RecentMovies) > 0 {
		parts = append(parts, fmt.Sprintf("- Ha visto %d películas recientemente", len(u.RecentMovies)))
	}
	if u.RatingPreference != nil && *u.RatingPreference > 0 {
		parts = append(parts, "- Prefiere películas con rating mínimo: "+strconv.FormatFloat(*u.RatingPreference, 'f', -1, 64))
	}
	if len(u.PreferredDecades) > 0 {
		parts = append(parts, "- Décadas preferidas: "+strings.Join(u.PreferredDecades, ", "))
	}
	if u.HasRoom() {
		parts = append(parts, fmt.Sprintf("- En sala de votación (excluir %d películas ya votadas)", len(u.RoomVotedMovies)))
	}
	if len(u.DislikedGenres) > 0 {
		parts = append(parts, "- Evitar géneros: "+strings.Join(table.Names(head(u.DislikedGenres, 3)), ", "))
	}
	if len(parts) == 0 {
		return noContext
	}
	return strings.Join(parts, "\n")
}

const noContext = "- Sin preferencias previas registradas"

func head[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}
