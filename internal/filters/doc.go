// Package filters defines ExtractedFilters, the structured form of a movie
// request produced by extraction or validation and consumed by ambiguity
// classification and retrieval.
//
// Values are treated as immutable once built: helpers such as WithExclusions
// return modified copies instead of mutating the receiver.
package filters
