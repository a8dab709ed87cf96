package moviecache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trini/internal/candidate"
	"trini/internal/config"
	"trini/internal/logging"
	"trini/internal/services"
)

// Lookup returns the records cached under key.
type Lookup interface {
	Lookup(ctx context.Context, key string) ([]candidate.Raw, error)
}

// KeyInfo summarizes one cache key.
type KeyInfo struct {
	Key       string    `json:"key"`
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a writable cache backend.
type Store interface {
	Lookup
	Put(ctx context.Context, key string, records []candidate.Raw) error
	Keys(ctx context.Context) ([]KeyInfo, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open builds the backend selected by cfg.Cache.Backend.
func Open(cfg *config.Config, logger *slog.Logger) (Store, error) {
	logger = logging.NewComponentLogger(logger, "moviecache")
	switch cfg.Cache.Backend {
	case "sqlite":
		store, err := OpenSQLite(cfg.Cache.Path)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "cache", "open sqlite", cfg.Cache.Path, err)
		}
		return store, nil
	case "json":
		return NewFileStore(cfg.Cache.Path, logger), nil
	case "redis":
		store, err := NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisPrefix)
		if err != nil {
			return nil, services.Wrap(services.ErrUpstreamUnavailable, "cache", "connect redis", cfg.Cache.RedisAddr, err)
		}
		return store, nil
	case "none":
		return NopStore{}, nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "cache", "open", fmt.Sprintf("unsupported backend %q", cfg.Cache.Backend), nil)
	}
}

// NopStore discards writes and never has records.
type NopStore struct{}

func (NopStore) Lookup(context.Context, string) ([]candidate.Raw, error) { return nil, nil }

func (NopStore) Put(context.Context, string, []candidate.Raw) error { return nil }

func (NopStore) Keys(context.Context) ([]KeyInfo, error) { return nil, nil }

func (NopStore) Clear(context.Context) error { return nil }

func (NopStore) Close() error { return nil }

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
