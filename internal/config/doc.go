// Package config loads, normalizes, and validates Trini configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY and OPENROUTER_API_KEY. The Config type centralizes every knob
// the recommender and CLI need: catalog and language-model credentials, the
// cache backend, and the retrieval cascade's limits and thresholds.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
