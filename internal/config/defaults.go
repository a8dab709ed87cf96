package config

const (
	defaultConfigPath            = "~/.config/trini/config.toml"
	defaultDataDir               = "~/.local/share/trini"
	defaultLogDir                = "~/.local/share/trini/logs"
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultTMDBLanguage          = "es-ES"
	defaultTMDBTimeoutSeconds    = 10
	defaultTMDBRequestsPerSecond = 4
	defaultLLMBaseURL            = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel              = "google/gemini-3-flash-preview"
	defaultLLMReferer            = "https://github.com/trini-movies/trini"
	defaultLLMTitle              = "Trini"
	defaultLLMTimeoutSeconds     = 30
	defaultCacheBackend          = "sqlite"
	defaultCacheFile             = "movie_cache.db"
	defaultJSONCacheFile         = "movie_cache.json"
	defaultRedisPrefix           = "trini:"
	defaultMemoryTTLSeconds      = 300
	defaultLimit                 = 10
	defaultMaxLimit              = 20
	defaultPrimaryRetries        = 2
	defaultPrimaryBackoffMillis  = 500
	defaultMinValidated          = 3
	defaultMinRating             = 5.0
	defaultBreakerFailures       = 5
	defaultBreakerTimeoutSeconds = 30
	defaultMaxQueryLength        = 500
	defaultAITimeoutSeconds      = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:           defaultTMDBBaseURL,
			Language:          defaultTMDBLanguage,
			TimeoutSeconds:    defaultTMDBTimeoutSeconds,
			RequestsPerSecond: defaultTMDBRequestsPerSecond,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Cache: Cache{
			Backend:          defaultCacheBackend,
			RedisPrefix:      defaultRedisPrefix,
			MemoryTTLSeconds: defaultMemoryTTLSeconds,
		},
		Retrieval: Retrieval{
			DefaultLimit:          defaultLimit,
			MaxLimit:              defaultMaxLimit,
			PrimaryRetries:        defaultPrimaryRetries,
			PrimaryBackoffMillis:  defaultPrimaryBackoffMillis,
			MinValidated:          defaultMinValidated,
			MinRating:             defaultMinRating,
			BreakerFailures:       defaultBreakerFailures,
			BreakerTimeoutSeconds: defaultBreakerTimeoutSeconds,
		},
		Extraction: Extraction{
			MaxQueryLength:   defaultMaxQueryLength,
			AIEnabled:        true,
			AITimeoutSeconds: defaultAITimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
