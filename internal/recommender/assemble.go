package recommender

import (
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"trini/internal/config"
	"trini/internal/curated"
	"trini/internal/extraction"
	"trini/internal/genre"
	"trini/internal/logging"
	"trini/internal/moviecache"
	"trini/internal/retrieval"
	"trini/internal/services/llm"
	"trini/internal/tmdb"
)

// Runtime owns an assembled Engine and the resources behind it.
type Runtime struct {
	Engine   *Engine
	Store    moviecache.Store
	Memo     *moviecache.Memo
	Cascade  *retrieval.Cascade
	Catalog  *curated.Catalog
	Registry *prometheus.Registry
}

// Close releases the cache backend.
func (r *Runtime) Close() error {
	if r == nil || r.Store == nil {
		return nil
	}
	return r.Store.Close()
}

// Assemble wires the cascade and the engine from cfg. The primary tier is
// included only when a TMDB key is configured, and the model only when AI
// extraction is enabled with a key.
func Assemble(cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	log := logging.NewComponentLogger(logger, "recommender")

	table := genre.Default()
	catalog := curated.Default()
	kit := retrieval.NewToolkit(table, nil)
	registry := prometheus.NewRegistry()
	metrics := retrieval.NewMetrics(registry)

	store, err := moviecache.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	memo := moviecache.NewMemo(store, cfg.MemoryTTL())

	var tiers []retrieval.Tier
	if cfg.TMDBEnabled() {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
			tmdb.WithTimeout(cfg.TMDBTimeout()),
			tmdb.WithRateLimit(cfg.TMDB.RequestsPerSecond))
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		searcher := tmdb.NewSearcher(client, logger, tmdb.WithMinRating(cfg.Retrieval.MinRating))
		tiers = append(tiers, retrieval.NewPrimaryTier(searcher, kit, retrieval.PrimaryOptions{
			Retries:         cfg.Retrieval.PrimaryRetries,
			Backoff:         cfg.PrimaryBackoff(),
			MinValidated:    cfg.Retrieval.MinValidated,
			BreakerFailures: cfg.Retrieval.BreakerFailures,
			BreakerTimeout:  cfg.BreakerTimeout(),
		}, metrics, logger))
	} else {
		log.Info("primary search disabled",
			logging.Args(logging.DecisionAttrs("primary_tier", "skip", "no tmdb api key configured")...)...)
	}
	tiers = append(tiers,
		retrieval.NewCachedTier(memo, kit, logger),
		retrieval.NewCuratedTier(catalog, kit),
		retrieval.EmergencyTier{},
	)
	cascade := retrieval.NewCascade(tiers,
		retrieval.WithLimits(cfg.Retrieval.DefaultLimit, cfg.Retrieval.MaxLimit),
		retrieval.WithMetrics(metrics),
		retrieval.WithLogger(logger))

	opts := Options{
		Genres:         table,
		Extractor:      extraction.New(table, extraction.WithMaxQueryLength(cfg.Extraction.MaxQueryLength)),
		Search:         cascade,
		AITimeout:      cfg.AITimeout(),
		MaxQueryLength: cfg.Extraction.MaxQueryLength,
		Limit:          cfg.Retrieval.DefaultLimit,
		Logger:         logger,
	}
	if cfg.LLMEnabled() {
		opts.LLM = llm.NewClient(llm.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Referer: cfg.LLM.Referer,
			Title:   cfg.LLM.Title,
			Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		})
	}

	return &Runtime{
		Engine:   New(opts),
		Store:    store,
		Memo:     memo,
		Cascade:  cascade,
		Catalog:  catalog,
		Registry: registry,
	}, nil
}
