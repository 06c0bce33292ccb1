package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// Compile-time check: NotificationRepository implements domain.NotificationRepository.
var _ domain.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository implements domain.NotificationRepository using SQLite.
type NotificationRepository struct {
	db *sql.DB
}

// Create stores a notification. Re-delivering the same id is a no-op, so
// a retried delivery job does not duplicate it.
func (r *NotificationRepository) Create(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, type, target_user_id, business_id, title, message, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		n.ID, string(n.Type), n.TargetUserID, n.BusinessID, n.Title, n.Message, n.Read, formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, target_user_id, business_id, title, message, read, created_at
		 FROM notifications WHERE target_user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var typ, createdAt string
		if err := rows.Scan(&n.ID, &typ, &n.TargetUserID, &n.BusinessID, &n.Title, &n.Message, &n.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		n.Type = domain.NotificationType(typ)
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing notification created_at: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
