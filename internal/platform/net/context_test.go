package net

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Fatalf("RequestID(empty) = %q", got)
	}

	ctx = WithRequestID(ctx, "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q, want %q", got, "req-42")
	}

	// empty id is a no-op
	ctx2 := WithRequestID(context.Background(), "")
	if got := RequestID(ctx2); got != "" {
		t.Fatalf("RequestID after empty set = %q", got)
	}
}
