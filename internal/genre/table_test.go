package genre

import (
	"slices"
	"strings"
	"testing"
)

func TestMatchCombinesExactAndFuzzy(t *testing.T) {
	table := Default()
	got := table.Match("Películas de ACCIÓN con mucho miedo")
	for _, want := range []Code{Action, Adventure, Horror} {
		if !slices.Contains(got, want) {
			t.Fatalf("expected %d in %v", want, got)
		}
	}
	seen := map[Code]bool{}
	for _, c := range got {
		if seen[c] {
			t.Fatalf("duplicate code %d in %v", c, got)
		}
		seen[c] = true
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	table := Default()
	first := table.Match("comedia romántica de terror y acción")
	for i := 0; i < 10; i++ {
		if got := table.Match("comedia romántica de terror y acción"); !slices.Equal(got, first) {
			t.Fatalf("match order changed: %v vs %v", got, first)
		}
	}
}

func TestLookupResolvesNames(t *testing.T) {
	table := Default()
	cases := map[string]Code{
		"Acción":          Action,
		"comedy":          Comedy,
		"Ciencia Ficción": SciFi,
		"chistoso":        Comedy,
	}
	for name, want := range cases {
		got, ok := table.Lookup(name)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %d, %v; want %d", name, got, ok, want)
		}
	}
	if _, ok := table.Lookup("zzz"); ok {
		t.Fatal("expected unknown genre to miss")
	}
}

func TestComplementaryExcludesPrimary(t *testing.T) {
	table := Default()
	got := table.Complementary([]Code{Comedy, Romance})
	if slices.Contains(got, Comedy) || slices.Contains(got, Romance) {
		t.Fatalf("complementary includes primary: %v", got)
	}
	if !slices.Contains(got, Family) || !slices.Contains(got, Drama) {
		t.Fatalf("unexpected complementary set: %v", got)
	}
}

func TestDescribeAndReference(t *testing.T) {
	table := Default()
	if got := table.Describe([]Code{Action, Drama, Horror}); got != "géneros acción, drama y terror" {
		t.Fatalf("Describe = %q", got)
	}
	if got := table.Describe(nil); got != "sin géneros específicos" {
		t.Fatalf("Describe(nil) = %q", got)
	}
	if !strings.Contains(table.Reference(), "- 878: ciencia ficción") {
		t.Fatalf("reference missing sci-fi line:\n%s", table.Reference())
	}
	if table.Name(Code(1)) != "género 1" {
		t.Fatalf("unexpected fallback name %q", table.Name(Code(1)))
	}
	if key, ok := table.CacheKey(SciFi); !ok || key != "scifi" {
		t.Fatalf("CacheKey = %q, %v", key, ok)
	}
}
