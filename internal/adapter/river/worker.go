package river

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/domain"
)

// NotificationWorker records delivered notifications so owners can poll
// for them. Recording is idempotent on the notification ID.
type NotificationWorker struct {
	river.WorkerDefaults[NotificationJobArgs]

	notifications domain.NotificationRepository
	logger        *zap.Logger
}

// NewNotificationWorker creates a worker that stores into the given repository.
func NewNotificationWorker(notifications domain.NotificationRepository, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, logger: logger}
}

// Work processes a single notification job.
func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[NotificationJobArgs]) error {
	n := job.Args.Notification()
	if err := w.notifications.Create(ctx, n); err != nil {
		w.logger.Warn("recording notification failed",
			zap.String("notification_id", n.ID),
			zap.Int64("job_id", job.ID),
			zap.Int("attempt", job.Attempt),
			zap.Error(err),
		)
		return fmt.Errorf("recording notification %s: %w", n.ID, err)
	}

	w.logger.Info("notification delivered",
		zap.String("notification_id", n.ID),
		zap.String("type", string(n.Type)),
		zap.String("business_id", n.BusinessID),
		zap.String("user_id", n.TargetUserID),
		zap.Int64("job_id", job.ID),
		zap.Int("attempt", job.Attempt),
	)
	return nil
}
