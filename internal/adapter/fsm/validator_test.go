package fsm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	adapter "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/fsm"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

func TestValidator_AllTransitions(t *testing.T) {
	v := adapter.New()
	ctx := context.Background()

	for _, tr := range domain.Transitions {
		dst, err := v.Apply(ctx, tr.Src, tr.Event)
		if err != nil {
			t.Errorf("Apply(%q, %q) unexpected error: %v", tr.Src, tr.Event, err)
			continue
		}
		if dst != tr.Dst {
			t.Errorf("Apply(%q, %q) = %q, want %q", tr.Src, tr.Event, dst, tr.Dst)
		}
	}
}

func TestValidator_InvalidTransition(t *testing.T) {
	v := adapter.New()
	ctx := context.Background()

	cases := []struct {
		from  domain.Status
		event domain.Event
	}{
		{domain.StatusActive, domain.EventApprove},
		{domain.StatusRejected, domain.EventApprove},
		{domain.StatusActive, domain.EventReject},
		{domain.StatusPending, domain.EventReactivate},
		{domain.StatusPending, domain.Event("suspend")},
		{domain.StatusRemoved, domain.EventReactivate},
		{domain.StatusRemoved, domain.EventDelete},
		{domain.Status("SUSPENDED"), domain.EventDelete},
	}

	for _, tc := range cases {
		_, err := v.Apply(ctx, tc.from, tc.event)
		var trErr *domain.TransitionError
		if !errors.As(err, &trErr) {
			t.Fatalf("Apply(%q, %q): expected TransitionError, got %v", tc.from, tc.event, err)
		}
		if trErr.Event != tc.event {
			t.Errorf("event = %q, want %q", trErr.Event, tc.event)
		}
		if trErr.Current != tc.from {
			t.Errorf("current = %q, want %q", trErr.Current, tc.from)
		}
	}
}

func TestValidator_FullLifecycle(t *testing.T) {
	v := adapter.New()
	ctx := context.Background()

	steps := []struct {
		from  domain.Status
		event domain.Event
		want  domain.Status
	}{
		{domain.StatusPending, domain.EventReject, domain.StatusRejected},
		{domain.StatusRejected, domain.EventReactivate, domain.StatusPending},
		{domain.StatusPending, domain.EventApprove, domain.StatusActive},
		{domain.StatusActive, domain.EventDelete, domain.StatusRemoved},
	}

	for _, step := range steps {
		got, err := v.Apply(ctx, step.from, step.event)
		if err != nil {
			t.Fatalf("Apply(%q, %q) error: %v", step.from, step.event, err)
		}
		if got != step.want {
			t.Errorf("Apply(%q, %q) = %q, want %q", step.from, step.event, got, step.want)
		}
	}
}

func TestValidator_DrivesLifecycle(t *testing.T) {
	engine := domain.NewLifecycle(adapter.New())
	b := domain.NewBusiness("b-1", "Barrow Barbers", "owner-1", time.Now())
	b.Town = "Carlow"

	out, err := engine.Apply(context.Background(), b, domain.Command{Event: domain.EventApprove}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Business.Status != domain.StatusActive {
		t.Errorf("Status = %q, want %q", out.Business.Status, domain.StatusActive)
	}

	_, err = engine.Apply(context.Background(), out.Business, domain.Command{Event: domain.EventApprove}, time.Now())
	var trErr *domain.TransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("second approve: expected TransitionError, got %v", err)
	}
}
