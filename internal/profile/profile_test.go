package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trini/internal/genre"
)

func TestAddRecentMovieKeepsNewestFirst(t *testing.T) {
	var u UserContext
	for i := 0; i < MaxRecentMovies+5; i++ {
		u.AddRecentMovie(string(rune('a' + i)))
	}
	if len(u.RecentMovies) != MaxRecentMovies {
		t.Fatalf("expected %d recent movies, got %d", MaxRecentMovies, len(u.RecentMovies))
	}
	if u.RecentMovies[0] != string(rune('a'+MaxRecentMovies+4)) {
		t.Fatalf("expected newest first, got %q", u.RecentMovies[0])
	}
	u.AddRecentMovie(u.RecentMovies[3])
	if len(u.RecentMovies) != MaxRecentMovies {
		t.Fatal("duplicate insert changed length")
	}
}

func TestExcludeListMergesWithoutDuplicates(t *testing.T) {
	u := &UserContext{RecentMovies: []string{"1", "2"}, RoomVotedMovies: []string{"2", "3"}}
	got := u.ExcludeList()
	if strings.Join(got, ",") != "1,2,3" {
		t.Fatalf("ExcludeList = %v", got)
	}
	if !u.ShouldExclude("3") || u.ShouldExclude("4") {
		t.Fatal("unexpected ShouldExclude result")
	}
	var nilCtx *UserContext
	if nilCtx.ExcludeList() != nil || nilCtx.ShouldExclude("1") {
		t.Fatal("nil context should exclude nothing")
	}
}

func TestPromptContext(t *testing.T) {
	table := genre.Default()
	rating := 7.5
	u := &UserContext{
		PreferredGenres:  []genre.Code{genre.Action, genre.Comedy},
		RecentMovies:     []string{"1", "2"},
		RatingPreference: &rating,
		PreferredDecades: []string{"1990s"},
		RoomID:           "room-1",
		RoomVotedMovies:  []string{"9"},
		DislikedGenres:   []genre.Code{genre.Horror},
	}
	got := u.PromptContext(table)
	for _, line := range []string{
		"- Géneros preferidos: acción, comedia",
		"- Ha visto 2 películas recientemente",
		"- Prefiere películas con rating mínimo: 7.5",
		"- Décadas preferidas: 1990s",
		"- En sala de votación (excluir 1 películas ya votadas)",
		"- Evitar géneros: terror",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("expected %q in context:\n%s", line, got)
		}
	}
	if (&UserContext{}).PromptContext(table) != "- Sin preferencias previas registradas" {
		t.Fatal("expected default context line")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	body := `{"userId":"u1","preferredGenres":[35],"recentMovies":["550"],"currentRoomId":"r","roomVotedMovies":["13"]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	u, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if u.UserID != "u1" || !u.HasRoom() || len(u.ExcludeList()) != 2 {
		t.Fatalf("unexpected profile: %+v", u)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
