package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Command is a requested lifecycle event plus its parameters.
type Command struct {
	Event Event
	// OverrideRegion lets an operator approve a business that fails IsInRegion.
	OverrideRegion bool
	// Reason is required for EventReject.
	Reason string
}

// AuditEntry describes an applied transition.
type AuditEntry struct {
	BusinessID     string
	Event          Event
	From           Status
	To             Status
	OverrideRegion bool
	At             time.Time
}

// Outcome is the result of a successful transition.
type Outcome struct {
	// Business is the new state. When Removed is set it holds the last
	// state before removal.
	Business      Business
	Notifications []Notification
	Removed       bool
	Audit         AuditEntry
}

// Lifecycle applies lifecycle events to businesses. It performs no I/O and
// never mutates the business it is given; callers persist the Outcome.
type Lifecycle struct {
	validator TransitionValidator
}

// NewLifecycle creates a lifecycle engine backed by the given validator.
func NewLifecycle(validator TransitionValidator) *Lifecycle {
	return &Lifecycle{validator: validator}
}

// Apply runs cmd against b at time now.
func (l *Lifecycle) Apply(ctx context.Context, b Business, cmd Command, now time.Time) (Outcome, error) {
	dst, err := l.validator.Apply(ctx, b.Status, cmd.Event)
	if err != nil {
		return Outcome{}, err
	}

	next := b
	var notifications []Notification

	switch cmd.Event {
	case EventApprove:
		if !cmd.OverrideRegion && !IsInRegion(b) {
			return Outcome{}, &RegionMismatchError{BusinessID: b.ID}
		}
		notifications = append(notifications, approvedNotification(b, now))

	case EventReject:
		reason := strings.TrimSpace(cmd.Reason)
		if reason == "" {
			return Outcome{}, ErrInvalidReason
		}
		next.RejectionReason = reason
		next.RejectedAt = now.UTC()
		notifications = append(notifications, rejectedNotification(b, reason, now))
	}

	audit := AuditEntry{
		BusinessID:     b.ID,
		Event:          cmd.Event,
		From:           b.Status,
		To:             dst,
		OverrideRegion: cmd.Event == EventApprove && cmd.OverrideRegion,
		At:             now.UTC(),
	}

	if dst == StatusRemoved {
		return Outcome{Business: b, Removed: true, Audit: audit}, nil
	}

	next.Status = dst
	next.UpdatedAt = now.UTC()

	return Outcome{Business: next, Notifications: notifications, Audit: audit}, nil
}

func approvedNotification(b Business, now time.Time) Notification {
	return Notification{
		Type:         NotificationBusinessApproved,
		TargetUserID: b.OwnerID,
		BusinessID:   b.ID,
		Title:        "Business Approved!",
		Message: fmt.Sprintf("Congratulations! Your business '%s' has been approved and is now live on LocalBook. "+
			"Customers can now find and book with you!", b.Name),
		CreatedAt: now.UTC(),
	}
}

func rejectedNotification(b Business, reason string, now time.Time) Notification {
	return Notification{
		Type:         NotificationBusinessRejected,
		TargetUserID: b.OwnerID,
		BusinessID:   b.ID,
		Title:        "Business Registration Update",
		Message: fmt.Sprintf("Your business '%s' was not approved. Reason: %s. "+
			"You can update your information and resubmit for review.", b.Name, reason),
		CreatedAt: now.UTC(),
	}
}
