package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/app"
)

type NotificationResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type" enum:"BUSINESS_APPROVED,BUSINESS_REJECTED"`
	BusinessID string `json:"business_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}

type ListNotificationsInput struct {
	UserID string `path:"id" doc:"Recipient user ID"`
}

type ListNotificationsOutput struct {
	Body []NotificationResponse
}

func registerNotifications(api huma.API, svc *app.NotificationService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/notifications",
		Summary:     "List a user's notifications, newest first",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, input *ListNotificationsInput) (*ListNotificationsOutput, error) {
		notifications, err := svc.ListForUser(ctx, input.UserID)
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]NotificationResponse, len(notifications))
		for i, n := range notifications {
			resp[i] = NotificationResponse{
				ID:         n.ID,
				Type:       string(n.Type),
				BusinessID: n.BusinessID,
				Title:      n.Title,
				Message:    n.Message,
				Read:       n.Read,
				CreatedAt:  formatTimestamp(n.CreatedAt),
			}
		}
		return &ListNotificationsOutput{Body: resp}, nil
	})
}
