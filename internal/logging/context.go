package logging

import (
	"context"
	"log/slog"

	"trini/internal/services"
)

const (
	// FieldComponent names the emitting package or subsystem.
	FieldComponent = "component"
	// FieldStage names the request stage (extract, validate, search).
	FieldStage = "stage"
	// FieldTier names the retrieval tier handling a search.
	FieldTier = "tier"
	// FieldCorrelationID carries the request identifier.
	FieldCorrelationID = "correlation_id"
)

var contextFields = []struct {
	key  string
	from func(context.Context) (string, bool)
}{
	{FieldStage, services.StageFromContext},
	{FieldTier, services.TierFromContext},
	{FieldCorrelationID, services.RequestIDFromContext},
}

// ContextFields extracts the request metadata stored on ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	for _, cf := range contextFields {
		if value, ok := cf.from(ctx); ok {
			fields = append(fields, slog.String(cf.key, value))
		}
	}
	return fields
}

// WithContext returns logger tagged with the request metadata on ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
