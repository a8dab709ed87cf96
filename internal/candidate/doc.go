// Package candidate normalizes heterogeneous movie records returned by the
// catalog search, the cache, or the curated table into a canonical Movie.
//
// Raw records arrive as decoded JSON maps whose keys differ by source
// (snake_case from TMDB, camelCase from cached rows). The accessors on Raw
// try each known key in order and coerce the value to the requested type.
// Normalizer then fills every canonical field, synthesizing defaults so that
// downstream scoring and rendering never see a missing value.
//
// The package also hosts the relevance signals shared by the quality gate
// and the scorer: content-based genre matching and keyword relevance.
package candidate
