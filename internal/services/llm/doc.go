// Package llm provides an OpenRouter chat client for language-model filter
// extraction.
//
// The recommender sends the Spanish extraction prompt through GenerateText
// and hands the returned text to the response validator. The client never
// interprets the answer itself.
//
// # Configuration
//
// Requires api_key and model, and optionally base_url, referer, title, timeout.
// When unconfigured, callers skip AI extraction and use the deterministic
// extractor.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.GenerateText: send one prompt, receive the model's text.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors, empty completions, and
// network timeouts with exponential backoff (base 1s, max 10s, up to 3
// attempts by default). Retry-After headers are honoured. Context
// cancellation aborts retries immediately.
//
// # Errors
//
// Failures are tagged with services markers so callers can classify them:
// ErrConfiguration (missing key), ErrTimeout, or ErrUpstreamUnavailable.
package llm
