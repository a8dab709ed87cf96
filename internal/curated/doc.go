// Package curated holds the static catalog served when neither the remote
// catalog nor the cache can answer a query. Entries are hand-picked, carry
// their own Spanish justifications, and double as seed data for the cache.
package curated
