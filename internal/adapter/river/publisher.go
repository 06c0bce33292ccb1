package river

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

var _ domain.NotificationPublisher = (*Publisher)(nil)

// NotificationJobArgs carries a snapshot of a notification from the
// transition that produced it to the worker that records it. River
// serializes it as JSON into its job table.
type NotificationJobArgs struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	TargetUserID string    `json:"target_user_id"`
	BusinessID   string    `json:"business_id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (NotificationJobArgs) Kind() string { return "notification.deliver" }

// Notification rebuilds the domain value carried by the job.
func (a NotificationJobArgs) Notification() domain.Notification {
	return domain.Notification{
		ID:           a.ID,
		Type:         domain.NotificationType(a.Type),
		TargetUserID: a.TargetUserID,
		BusinessID:   a.BusinessID,
		Title:        a.Title,
		Message:      a.Message,
		CreatedAt:    a.CreatedAt,
	}
}

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Publisher implements domain.NotificationPublisher by enqueuing River jobs.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher backed by the given River client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Publish enqueues a notification for asynchronous recording. A
// notification without an ID is assigned one here, so a retried job
// always writes the same record.
func (p *Publisher) Publish(ctx context.Context, n domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	_, err := p.client.Insert(ctx, NotificationJobArgs{
		ID:           n.ID,
		Type:         string(n.Type),
		TargetUserID: n.TargetUserID,
		BusinessID:   n.BusinessID,
		Title:        n.Title,
		Message:      n.Message,
		CreatedAt:    n.CreatedAt,
	}, &river.InsertOpts{MaxAttempts: 5})
	if err != nil {
		return fmt.Errorf("enqueuing notification job: %w", err)
	}
	return nil
}
