// Package genre holds the static genre table that maps free-text terms in
// Spanish and English to canonical TMDB genre codes.
//
// A Table is built once with Default and shared read-only across goroutines.
// Lookups fold accents so "acción", "Accion", and "action" resolve to the
// same code, and regex patterns catch variants the exact term list misses.
package genre
