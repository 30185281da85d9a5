package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wallyverse/social-exchange/internal/core/domain"
)

func TestMinimumFollowCost_DefaultWhenUnset(t *testing.T) {
	f := newFixture()

	v, err := f.policySvc.MinimumFollowCost(context.Background())
	if err != nil {
		t.Fatalf("MinimumFollowCost: %v", err)
	}
	if v != domain.DefaultMinimumFollowCost {
		t.Fatalf("value = %v, want default %v", v, domain.DefaultMinimumFollowCost)
	}
}

func TestSetMinimumFollowCost_UpsertsSingleRow(t *testing.T) {
	f := newFixture()

	if err := f.policySvc.SetMinimumFollowCost(context.Background(), 250); err != nil {
		t.Fatalf("SetMinimumFollowCost: %v", err)
	}
	if err := f.policySvc.SetMinimumFollowCost(context.Background(), 42); err != nil {
		t.Fatalf("second SetMinimumFollowCost: %v", err)
	}

	v, err := f.policySvc.MinimumFollowCost(context.Background())
	if err != nil {
		t.Fatalf("MinimumFollowCost: %v", err)
	}
	if v != 42 {
		t.Fatalf("value = %v, want the latest write 42", v)
	}
	if len(f.policies.values) != 1 {
		t.Fatalf("policy rows = %d, want 1", len(f.policies.values))
	}
}

func TestSetMinimumFollowCost_RejectsNegative(t *testing.T) {
	f := newFixture()

	err := f.policySvc.SetMinimumFollowCost(context.Background(), -1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}

	// Zero is a valid threshold: every positive per-follower amount pays out.
	if err := f.policySvc.SetMinimumFollowCost(context.Background(), 0); err != nil {
		t.Fatalf("SetMinimumFollowCost(0): %v", err)
	}
}
