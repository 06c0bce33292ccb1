package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const unnamedBusiness = "Unnamed"

// RawBusiness is a business record as older clients and exports send it.
// Normalize turns it into the canonical Business exactly once.
type RawBusiness struct {
	ID               string     `json:"id"`
	Name             string     `json:"name,omitempty"`
	BusinessName     string     `json:"businessName,omitempty"`
	Status           string     `json:"status,omitempty"`
	IsApproved       *bool      `json:"isApproved,omitempty"`
	Category         string     `json:"category,omitempty"`
	Town             string     `json:"town,omitempty"`
	Location         string     `json:"location,omitempty"`
	Address          string     `json:"address,omitempty"`
	Eircode          string     `json:"eircode,omitempty"`
	PostalPrefix     string     `json:"postalPrefix,omitempty"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
	RejectedAt       *time.Time `json:"rejectedAt,omitempty"`
	OwnerID          string     `json:"ownerId,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
}

// Normalize maps a raw record onto Business. An explicit status wins;
// otherwise isApproved decides between ACTIVE and PENDING.
func (r RawBusiness) Normalize() (Business, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return Business{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	status, err := r.status()
	if err != nil {
		return Business{}, err
	}

	b := Business{
		ID:              id,
		Name:            firstNonBlank(r.Name, r.BusinessName, unnamedBusiness),
		Status:          status,
		Category:        strings.TrimSpace(r.Category),
		Town:            r.Town,
		LocationText:    r.Location,
		AddressText:     r.Address,
		PostalPrefix:    firstNonBlank(r.PostalPrefix, r.Eircode),
		RejectionReason: strings.TrimSpace(r.RejectionReason),
		OwnerID:         r.OwnerID,
		CreatedAt:       firstTime(r.CreatedAt, r.RegistrationDate),
	}
	if r.RejectedAt != nil {
		b.RejectedAt = r.RejectedAt.UTC()
	}
	b.UpdatedAt = b.CreatedAt
	return b, nil
}

func (r RawBusiness) status() (Status, error) {
	if s := strings.TrimSpace(r.Status); s != "" {
		status := Status(strings.ToUpper(s))
		if !status.Valid() {
			return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", s)}
		}
		return status, nil
	}
	if r.IsApproved != nil && *r.IsApproved {
		return StatusActive, nil
	}
	return StatusPending, nil
}

// RawUser is a user record as exported by the accounts service.
type RawUser struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Normalize validates the role and returns the canonical User.
func (r RawUser) Normalize() (User, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return User{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	role := Role(strings.ToUpper(strings.TrimSpace(r.Role)))
	if !role.Valid() {
		return User{}, &ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role %q", r.Role)}
	}
	return User{ID: id, Role: role, CreatedAt: firstTime(r.CreatedAt)}, nil
}

// RawBooking is an appointment record. Depending on the client it carries
// the appointment time as appointmentDate, date, or only createdAt.
type RawBooking struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"businessId"`
	Price           decimal.Decimal `json:"priceAtBooking"`
	AppointmentDate *time.Time      `json:"appointmentDate,omitempty"`
	Date            *time.Time      `json:"date,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}

// Normalize resolves OccursAt once and validates the price.
func (r RawBooking) Normalize() (Booking, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return Booking{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if r.Price.IsNegative() {
		return Booking{}, &ValidationError{Field: "priceAtBooking", Reason: "must not be negative"}
	}
	return Booking{
		ID:             id,
		BusinessID:     r.BusinessID,
		PriceAtBooking: r.Price,
		OccursAt:       firstTime(r.AppointmentDate, r.Date, r.CreatedAt),
		CreatedAt:      firstTime(r.CreatedAt),
	}, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// firstTime returns the first non-nil timestamp in UTC, or the zero time.
// A zero time falls outside every analytics window.
func firstTime(values ...*time.Time) time.Time {
	for _, v := range values {
		if v != nil {
			return v.UTC()
		}
	}
	return time.Time{}
}
