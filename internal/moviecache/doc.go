// Package moviecache stores pre-fetched movie records under cache keys such
// as movies_all_action or movies_recent.
//
// The cached fallback tier reads from a Lookup; operators seed and inspect a
// Store through the CLI. Backends:
//
//   - SQLiteStore: default, WAL-mode database with embedded migrations
//   - FileStore: a single JSON document guarded by a cross-process flock
//   - RedisStore: shared cache for multiple hosts
//   - Memo: in-process TTL memo with duplicate call suppression, wrapping any Lookup
//
// A key that was never stored yields an empty slice and a nil error.
package moviecache
