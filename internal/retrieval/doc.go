// Package retrieval implements the recommendation cascade.
//
// A Cascade drives an ordered list of Tier strategies. Each tier is tried
// only when the previous one produced fewer results than its sufficiency
// threshold:
//
//  1. PrimaryTier: live catalog search behind retries and a circuit breaker,
//     screened by the candidate quality gate and widened with complementary
//     genres when too little survives
//  2. CachedTier: records stored under prioritized cache keys, scored with
//     partial credit
//  3. CuratedTier: the static curated catalog with per-entry justifications
//  4. EmergencyTier: a single placeholder scored exactly 0
//
// Exclusions are enforced inside every tier and again over the final list.
// Tier failures advance the cascade; Search never returns an error or an empty
// slice. Metrics registers the cascade's prometheus collectors.
package retrieval
