package domain

import "context"

// BusinessRepository defines the persistence contract for businesses.
type BusinessRepository interface {
	Create(ctx context.Context, business Business) error
	GetByID(ctx context.Context, id string) (Business, error)
	List(ctx context.Context, filter ListFilter) ([]Business, error)
	Update(ctx context.Context, business Business) error
	// Delete removes a business and records its id so it is never reused.
	Delete(ctx context.Context, id string) error
}

// ListFilter holds optional criteria for listing businesses.
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

// UserRepository stores the user records analytics reads.
type UserRepository interface {
	Upsert(ctx context.Context, user User) error
	List(ctx context.Context) ([]User, error)
}

// BookingRepository stores the booking records analytics reads.
type BookingRepository interface {
	Upsert(ctx context.Context, booking Booking) error
	List(ctx context.Context) ([]Booking, error)
}

// NotificationRepository stores delivered notifications for polling clients.
type NotificationRepository interface {
	Create(ctx context.Context, notification Notification) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
}

// NotificationPublisher hands notifications to the delivery pipeline.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// TransitionValidator checks an event against the transition table and
// returns the destination status.
type TransitionValidator interface {
	Apply(ctx context.Context, current Status, event Event) (Status, error)
}

// AuditRecorder receives every applied transition. Recording is
// best-effort and never fails the transition.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}
