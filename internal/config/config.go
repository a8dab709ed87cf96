package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// TMDB contains configuration for The Movie Database discover API.
type TMDB struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	Language          string  `toml:"language"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// LLM contains the chat-completions connection used for filter extraction.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Cache selects and configures the movie cache backend.
type Cache struct {
	Backend          string `toml:"backend"` // sqlite, json, redis, none
	Path             string `toml:"path"`
	RedisAddr        string `toml:"redis_addr"`
	RedisPrefix      string `toml:"redis_prefix"`
	MemoryTTLSeconds int    `toml:"memory_ttl_seconds"`
}

// Retrieval tunes the fallback cascade.
type Retrieval struct {
	DefaultLimit          int     `toml:"default_limit"`
	MaxLimit              int     `toml:"max_limit"`
	PrimaryRetries        int     `toml:"primary_retries"`
	PrimaryBackoffMillis  int     `toml:"primary_backoff_ms"`
	MinValidated          int     `toml:"min_validated"`
	MinRating             float64 `toml:"min_rating"`
	BreakerFailures       int     `toml:"breaker_failures"`
	BreakerTimeoutSeconds int     `toml:"breaker_timeout_seconds"`
}

// Extraction controls query sanitizing and the AI extraction step.
type Extraction struct {
	MaxQueryLength   int  `toml:"max_query_length"`
	AIEnabled        bool `toml:"ai_enabled"`
	AITimeoutSeconds int  `toml:"ai_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Trini.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - TMDB: primary movie search via The Movie Database
//   - LLM: language-model filter extraction
//   - Cache: cached fallback storage
//   - Retrieval: cascade limits, retries, and circuit breaker
//   - Extraction: query limits and AI toggle
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	TMDB       TMDB       `toml:"tmdb"`
	LLM        LLM        `toml:"llm"`
	Cache      Cache      `toml:"cache"`
	Retrieval  Retrieval  `toml:"retrieval"`
	Extraction Extraction `toml:"extraction"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config with paths expanded, the file it resolved, and whether that file
// existed. A missing file yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := locate(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// locate resolves an explicit path as given, otherwise the first existing
// file among the user config and ./trini.toml. When nothing exists the user
// config path is returned so callers can report where to create one.
func locate(path string) (string, bool, error) {
	var candidates []string
	if path != "" {
		candidates = []string{path}
	} else {
		candidates = []string{defaultConfigPath, "trini.toml"}
	}

	first := ""
	for _, candidate := range candidates {
		expanded, err := expandPath(candidate)
		if err != nil {
			return "", false, err
		}
		if first == "" {
			first = expanded
		}
		info, err := os.Stat(expanded)
		switch {
		case err == nil && !info.IsDir():
			return expanded, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("stat config: %w", err)
		}
	}
	return first, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// TMDBEnabled reports whether primary catalog search is configured.
func (c *Config) TMDBEnabled() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// LLMEnabled reports whether AI extraction can run.
func (c *Config) LLMEnabled() bool {
	return c.Extraction.AIEnabled && strings.TrimSpace(c.LLM.APIKey) != ""
}

// TMDBTimeout returns the per-request catalog timeout.
func (c *Config) TMDBTimeout() time.Duration {
	return time.Duration(c.TMDB.TimeoutSeconds) * time.Second
}

// AITimeout returns the extraction timeout applied around the LLM call.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.Extraction.AITimeoutSeconds) * time.Second
}

// MemoryTTL returns how long cache lookups are memoized in-process.
func (c *Config) MemoryTTL() time.Duration {
	return time.Duration(c.Cache.MemoryTTLSeconds) * time.Second
}

// PrimaryBackoff returns the base backoff between primary search attempts.
func (c *Config) PrimaryBackoff() time.Duration {
	return time.Duration(c.Retrieval.PrimaryBackoffMillis) * time.Millisecond
}

// BreakerTimeout returns how long the primary circuit stays open.
func (c *Config) BreakerTimeout() time.Duration {
	return time.Duration(c.Retrieval.BreakerTimeoutSeconds) * time.Second
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if value == "~" || strings.HasPrefix(value, "~/") || strings.HasPrefix(value, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, value[1:])
	}
	absolute, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
