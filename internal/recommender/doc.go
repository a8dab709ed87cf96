// Package recommender is the facade over extraction, validation, ambiguity
// classification and the retrieval cascade.
//
// Engine exposes the individual steps for callers that drive them
// separately, and Ask for the end-to-end flow: sanitize the query, optionally
// ask the language model for structured filters, validate its answer with a
// deterministic fallback, decide whether to ask the user for clarification,
// and otherwise search. Assemble builds an Engine and its storage from
// configuration.
package recommender
