// Package validation checks structured filter payloads produced by the
// language model and converts them into ExtractedFilters.
//
// Structural problems (genres not a list, intent missing or not a string,
// confidence missing or a number outside [0,1]) reject the whole payload with
// services.ErrMalformedPayload so the caller can fall back to deterministic
// extraction. Field-level problems are repaired or dropped individually:
// invalid genre entries, out-of-domain years or ratings, and oversized
// keywords never fail the payload.
//
// When the model wraps its answer in prose, the validator looks for an
// embedded fragment: a code-fenced block, or the first balanced brace span
// that mentions "genres" or "confidence".
package validation
