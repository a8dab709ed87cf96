// Package ambiguity calibrates model confidence against the evidence that was
// actually extracted and decides whether a query can be searched or needs a
// clarifying question first.
package ambiguity
