// Package profile models the per-user context that personalizes a query:
// preferred and disliked genres, recently recommended movies, decade and
// rating preferences, and voting-room state.
//
// The context feeds two places. PromptContext renders the Spanish lines
// embedded in the extraction prompt, and ExcludeList supplies the movie ids
// that every retrieval tier must suppress.
package profile
