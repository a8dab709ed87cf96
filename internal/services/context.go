package services

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	tierKey
	stageKey
)

func withValue(ctx context.Context, key contextKey, value string) context.Context {
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func valueOf(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}

// WithStage annotates context with the query pipeline stage (extract, validate, search).
func WithStage(ctx context.Context, stage string) context.Context {
	return withValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, stageKey)
}

// WithTier annotates context with the retrieval tier currently running.
func WithTier(ctx context.Context, tier string) context.Context {
	return withValue(ctx, tierKey, tier)
}

// TierFromContext returns the retrieval tier if present.
func TierFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, tierKey)
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return valueOf(ctx, requestIDKey)
}
