// Package services defines shared utilities consumed by the query pipeline and
// its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp request IDs, pipeline stages, and retrieval
//     tiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures as
//     surfaced (input) or recovered (upstream, payload, data quality).
//
// Integrations under services/ (the LLM client) tag their failures with these
// markers so the retrieval cascade can decide whether to advance.
package services
