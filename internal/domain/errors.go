package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrBusinessExists   = errors.New("business already exists")
	ErrBusinessRemoved  = errors.New("business id belongs to a removed business")
	ErrInvalidReason    = errors.New("rejection reason must not be blank")
)

// TransitionError is returned when a state transition is not allowed.
type TransitionError struct {
	Event   Event
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from state %q", e.Event, e.Current)
}

// RegionMismatchError is returned when approving a business that fails the
// region check without an explicit override.
type RegionMismatchError struct {
	BusinessID string
}

func (e *RegionMismatchError) Error() string {
	return fmt.Sprintf("business %q is not in the Carlow region; approval requires an override", e.BusinessID)
}

// ValidationError reports a malformed inbound record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
