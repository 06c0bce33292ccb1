package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

func TestListForUser(t *testing.T) {
	repo := &mockNotifications{byUser: map[string][]domain.Notification{
		"owner-1": {{ID: "n-1", TargetUserID: "owner-1", Type: domain.NotificationBusinessApproved}},
	}}
	svc := app.NewNotificationService(repo)

	got, err := svc.ListForUser(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "n-1" {
		t.Errorf("unexpected notifications: %+v", got)
	}

	var vErr *domain.ValidationError
	if _, err := svc.ListForUser(context.Background(), " "); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
