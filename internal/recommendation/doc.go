// Package recommendation defines the ranked result returned to callers and
// the Spanish reasoning attached to each recommended movie.
package recommendation
