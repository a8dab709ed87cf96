package services_test

import (
	"context"
	"testing"

	"trini/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithTier(ctx, "primary")
	ctx = services.WithStage(ctx, "search")
	ctx = services.WithRequestID(ctx, "req-123")

	if tier, ok := services.TierFromContext(ctx); !ok || tier != "primary" {
		t.Fatalf("unexpected tier: %v %v", tier, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "search" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	ctx = services.WithTier(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.TierFromContext(ctx); ok {
		t.Fatal("expected no tier value")
	}
}
