// Package scoring ranks normalized candidates against extracted filters.
//
// Score is a weighted sum of five components (genre, rating, year
// proximity, keyword relevance, popularity) followed by a deterministic
// per-movie jitter that breaks ties between otherwise identical candidates,
// a penalty for very low ratings, and a clamp to [0.1, 1.0]. A score of
// exactly zero is reserved for the emergency placeholder.
package scoring
