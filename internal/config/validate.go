package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateRetrieval(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "sqlite", "json", "none":
	case "redis":
		if strings.TrimSpace(c.Cache.RedisAddr) == "" {
			return errors.New("cache.redis_addr must be set when cache.backend is redis (or set TRINI_REDIS_ADDR)")
		}
	default:
		return fmt.Errorf("cache.backend %q is not supported (sqlite, json, redis, none)", c.Cache.Backend)
	}
	return nil
}

func (c *Config) validateRetrieval() error {
	r := c.Retrieval
	if r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("retrieval.default_limit (%d) must not exceed retrieval.max_limit (%d)", r.DefaultLimit, r.MaxLimit)
	}
	if r.MinRating < 0 || r.MinRating > 10 {
		return errors.New("retrieval.min_rating must be between 0 and 10")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.MaxQueryLength > 5000 {
		return errors.New("extraction.max_query_length must be at most 5000")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not recognized (debug, info, warn, error)", c.Logging.Level)
	}
}
