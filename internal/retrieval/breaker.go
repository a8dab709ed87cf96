package retrieval

import (
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"trini/internal/candidate"
	"trini/internal/logging"
)

type breaker = gobreaker.CircuitBreaker[[]candidate.Raw]

func newBreaker(name string, failures int, timeout time.Duration, logger *slog.Logger) *breaker {
	if failures <= 0 {
		failures = 5
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			attrs := logging.DecisionAttrs("circuit_breaker", to.String(), "state changed from "+from.String())
			attrs = append(attrs, logging.String("breaker", name))
			if to == gobreaker.StateOpen {
				logging.WarnWithContext(logger, "primary search circuit opened", "circuit_open",
					append(attrs,
						logging.String(logging.FieldErrorHint, "check TMDB connectivity and api key"),
						logging.String(logging.FieldImpact, "primary search skipped until the breaker half-opens"))...)
				return
			}
			logger.Info("primary search circuit state changed", logging.Args(attrs...)...)
		},
	}
	return gobreaker.NewCircuitBreaker[[]candidate.Raw](settings)
}
