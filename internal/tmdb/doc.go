// Package tmdb provides the TMDB API client used for primary movie search.
//
// Client wraps the discover and search endpoints behind a token-bucket rate
// limiter and typed responses. Searcher adapts the client to the retrieval
// cascade: it turns a retrieval.Payload into discover parameters, merges
// keyword search hits, drops excluded ids, and returns raw candidate records.
package tmdb
