package ctxutil

import (
	"context"
	"testing"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := RunIDFromContext(ctx); got != "" {
		t.Errorf("expected empty run ID, got %q", got)
	}

	ctx = WithRunID(ctx, "run-1")
	if got := RunIDFromContext(ctx); got != "run-1" {
		t.Errorf("RunIDFromContext() = %q, want %q", got, "run-1")
	}
}
