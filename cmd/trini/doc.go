// Package main hosts the Trini CLI entrypoint and command graph.
//
// The Cobra command tree runs the recommendation flow end to end (ask), or
// one step at a time (extract, validate, search), and exposes operator
// utilities for the movie cache, configuration scaffolding and the genre
// table. Configuration loading, logger setup and engine assembly live in the
// shared command context so subcommands only parse flags and render output.
package main
