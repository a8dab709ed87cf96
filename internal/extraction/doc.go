// Package extraction turns free-text movie requests into ExtractedFilters.
//
// Extractor.Extract is the deterministic path: genre terms come from the
// genre table, eras and years from ordered regex patterns (decades before bare
// years), ratings from explicit scores or quality adjectives, and keywords
// from the remaining content words. It never fails for non-empty input and is
// used whenever the language model is unavailable or its answer is invalid.
//
// Prompt builds the Spanish instruction prompt sent to the language model and
// is the only place that rejects input (services.ErrInput).
package extraction
