package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a business listing.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"

	// StatusRemoved is the sink the delete event leads to. It is never
	// assigned to a Business; a removed business no longer exists.
	StatusRemoved Status = "REMOVED"
)

// Valid reports whether s is one of the statuses a stored business may carry.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected:
		return true
	}
	return false
}

// Event represents an action that triggers a state transition.
type Event string

const (
	EventApprove    Event = "approve"
	EventReject     Event = "reject"
	EventReactivate Event = "reactivate"
	EventDelete     Event = "delete"
)

// Transition defines a valid state change: an event moves a business from Src to Dst.
type Transition struct {
	Event Event
	Src   Status
	Dst   Status
}

// Transitions defines all valid state changes in the business lifecycle.
// Guards (region, reason) live in Lifecycle, not here.
var Transitions = []Transition{
	{Event: EventApprove, Src: StatusPending, Dst: StatusActive},
	{Event: EventReject, Src: StatusPending, Dst: StatusRejected},
	{Event: EventReactivate, Src: StatusRejected, Dst: StatusPending},
	{Event: EventDelete, Src: StatusPending, Dst: StatusRemoved},
	{Event: EventDelete, Src: StatusActive, Dst: StatusRemoved},
	{Event: EventDelete, Src: StatusRejected, Dst: StatusRemoved},
}

// Business is a local-services provider listed on the platform.
type Business struct {
	ID       string
	Name     string
	Status   Status
	Category string

	Town         string
	LocationText string
	AddressText  string
	PostalPrefix string

	RejectionReason string
	RejectedAt      time.Time

	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBusiness creates a business in the initial "PENDING" state.
func NewBusiness(id, name, ownerID string, now time.Time) Business {
	now = now.UTC()
	return Business{
		ID:        id,
		Name:      name,
		Status:    StatusPending,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Role is a platform user's role.
type Role string

const (
	RoleClient        Role = "CLIENT"
	RoleBusinessOwner Role = "BUSINESS_OWNER"
	RoleAdmin         Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleBusinessOwner, RoleAdmin:
		return true
	}
	return false
}

// User is the subset of a platform account the core reads.
type User struct {
	ID        string
	Role      Role
	CreatedAt time.Time
}

// Booking is a client appointment with a business. OccursAt is the
// timestamp analytics windows are evaluated against.
type Booking struct {
	ID             string
	BusinessID     string
	PriceAtBooking decimal.Decimal
	OccursAt       time.Time
	CreatedAt      time.Time
}

// NotificationType identifies what a notification announces.
type NotificationType string

const (
	NotificationBusinessApproved NotificationType = "BUSINESS_APPROVED"
	NotificationBusinessRejected NotificationType = "BUSINESS_REJECTED"
)

// Notification is an in-app message addressed to a user. Lifecycle
// produces them; delivery is the publisher's job.
type Notification struct {
	ID           string
	Type         NotificationType
	TargetUserID string
	BusinessID   string
	Title        string
	Message      string
	Read         bool
	CreatedAt    time.Time
}
