package app

import (
	"context"
	"strings"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// NotificationService exposes recorded notifications to their recipients.
type NotificationService struct {
	repo domain.NotificationRepository
}

// NewNotificationService creates a notification query service.
func NewNotificationService(repo domain.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &domain.ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	return s.repo.ListByUser(ctx, userID)
}
