package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInput               = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedPayload    = errors.New("malformed upstream payload")
	ErrDataQuality         = errors.New("data quality error")
	ErrConfiguration       = errors.New("configuration error")
	ErrTimeout             = errors.New("timeout")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrUpstreamUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether a failure should advance the retrieval cascade
// rather than surface to the caller. Only input errors are surfaced.
func Recoverable(err error) bool {
	if err == nil {
		return true
	}
	return !errors.Is(err, ErrInput)
}

// Hint returns a short operator hint for the marker carried by err.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInput):
		return "rephrase the query with plain text"
	case errors.Is(err, ErrConfiguration):
		return "check trini config (trini config show)"
	case errors.Is(err, ErrTimeout):
		return "upstream is slow; raise timeout_seconds or retry later"
	case errors.Is(err, ErrMalformedPayload):
		return "model answer was not valid filter JSON"
	case errors.Is(err, ErrDataQuality):
		return "candidate record is missing required fields"
	default:
		return "check upstream connectivity and credentials"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
