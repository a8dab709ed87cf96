package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"trini/internal/config"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("TRINI_REDIS_ADDR", "")
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultConfigUsesEnvKeysAndExpandsPaths(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("OPENROUTER_API_KEY", "router-key")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(home, ".local", "share", "trini")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Cache.Path != filepath.Join(wantData, "movie_cache.db") {
		t.Fatalf("unexpected cache path: %q", cfg.Cache.Path)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.LLM.APIKey != "router-key" {
		t.Fatalf("expected LLM key from env, got %q", cfg.LLM.APIKey)
	}
	if cfg.TMDB.Language != "es-ES" {
		t.Fatalf("unexpected language: %q", cfg.TMDB.Language)
	}
	if !cfg.TMDBEnabled() || !cfg.LLMEnabled() {
		t.Fatal("expected TMDB and LLM enabled when keys are present")
	}
	if cfg.Retrieval.DefaultLimit != 10 || cfg.Retrieval.MaxLimit != 20 {
		t.Fatalf("unexpected limits: %+v", cfg.Retrieval)
	}
	if cfg.PrimaryBackoff() != 500*time.Millisecond {
		t.Fatalf("unexpected primary backoff: %s", cfg.PrimaryBackoff())
	}
	if cfg.Extraction.MaxQueryLength != 500 {
		t.Fatalf("unexpected max query length: %d", cfg.Extraction.MaxQueryLength)
	}
}

func TestLoadFallsBackToLegacyLLMKey(t *testing.T) {
	isolateEnv(t)
	os.Unsetenv("OPENROUTER_API_KEY")
	t.Setenv("LLM_API_KEY", "legacy")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LLM.APIKey != "legacy" {
		t.Fatalf("expected LLM_API_KEY fallback, got %q", cfg.LLM.APIKey)
	}
}

func TestLoadCustomConfigOverridesDefaults(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `
[paths]
data_dir = "~/trini-data"

[tmdb]
api_key = "file-key"
base_url = "https://tmdb.example/3/"

[cache]
backend = "JSON"

[retrieval]
default_limit = 5
max_limit = 8
min_rating = 6.5

[extraction]
ai_enabled = false

[logging]
format = "JSON"
level = "DEBUG"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to resolve, got %q exists=%v", resolved, exists)
	}
	home, _ := os.UserHomeDir()
	if cfg.Paths.DataDir != filepath.Join(home, "trini-data") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.TMDB.BaseURL != "https://tmdb.example/3" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.Cache.Backend != "json" {
		t.Fatalf("expected lowercased backend, got %q", cfg.Cache.Backend)
	}
	if !strings.HasSuffix(cfg.Cache.Path, "movie_cache.json") {
		t.Fatalf("expected json cache file, got %q", cfg.Cache.Path)
	}
	if cfg.Retrieval.DefaultLimit != 5 || cfg.Retrieval.MaxLimit != 8 || cfg.Retrieval.MinRating != 6.5 {
		t.Fatalf("unexpected retrieval: %+v", cfg.Retrieval)
	}
	if cfg.Retrieval.PrimaryRetries != 2 {
		t.Fatalf("expected untouched retries default, got %d", cfg.Retrieval.PrimaryRetries)
	}
	if cfg.LLMEnabled() {
		t.Fatal("expected LLM disabled when ai_enabled=false")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown backend", body: "[cache]\nbackend = \"memcached\"\n", want: "cache.backend"},
		{name: "redis without addr", body: "[cache]\nbackend = \"redis\"\n", want: "cache.redis_addr"},
		{name: "limit above max", body: "[retrieval]\ndefault_limit = 30\nmax_limit = 20\n", want: "retrieval.default_limit"},
		{name: "rating out of range", body: "[retrieval]\nmin_rating = 11.0\n", want: "retrieval.min_rating"},
		{name: "unknown level", body: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRedisBackendUsesEnvAddress(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TRINI_REDIS_ADDR", "localhost:6379")
	cfg, _, _, err := config.Load(writeConfig(t, "[cache]\nbackend = \"redis\"\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr: %q", cfg.Cache.RedisAddr)
	}
	if cfg.Cache.RedisPrefix != "trini:" {
		t.Fatalf("unexpected redis prefix: %q", cfg.Cache.RedisPrefix)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	isolateEnv(t)
	if _, _, _, err := config.Load(writeConfig(t, "[tmdb\napi_key = 1")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if decoded.Retrieval.MaxLimit != 20 {
		t.Fatalf("unexpected sample max limit: %d", decoded.Retrieval.MaxLimit)
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestEnsureDirectoriesCreatesPaths(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := isolateEnv(t)
	got, err := config.ExpandPath("~/movies")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "movies") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
