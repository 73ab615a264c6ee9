package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> preparing ──> out-for-delivery ──> delivered
//
// The forward order is the intended flow. By default any valid status may be
// submitted as the next one, except that a delivered order is terminal.
// AdvanceTo additionally enforces forward-only adjacency for deployments that
// opt into strict transitions.
type Status string

const (
	// Pending is the initial status. Only pending orders can be deleted.
	Pending Status = "pending"

	// Preparing means the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery means a courier has picked the order up.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is the final status with no outgoing transitions.
	Delivered Status = "delivered"

	// Invalid is a literal some clients send to mark a status as unset.
	// It is always rejected.
	Invalid Status = "invalid"
)

// Status guard messages.
const (
	MsgStatusIsRequired       = "Order must have a status of pending, preparing, out-for-delivery, delivered"
	MsgDeliveredCannotChange  = "A delivered order cannot be changed"
	MsgDeleteRequiresPending  = "An order cannot be deleted unless it is pending."
	msgTransitionIsNotAllowed = "Order status cannot change from %s to %s"
)

// lifecycle lists the valid statuses in their forward order.
var lifecycle = []Status{Pending, Preparing, OutForDelivery, Delivered}

// Statuses returns the valid statuses in lifecycle order.
func Statuses() []Status {
	return append([]Status(nil), lifecycle...)
}

// ParseStatus converts a submitted value into a Status.
// Empty strings, the "invalid" literal and unknown values are rejected.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the four lifecycle statuses.
func (s Status) Validate() error {
	if s.position() < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			MsgStatusIsRequired,
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateChangeTo checks that an order currently in s may be saved with
// status next. A delivered order only accepts delivered.
//
// Example:
//
//	if err := stored.Status.ValidateChangeTo(submitted); err != nil {
//	    return err // "A delivered order cannot be changed"
//	}
func (s Status) ValidateChangeTo(next Status) error {
	if s.IsTerminal() && next != s {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			MsgDeliveredCannotChange,
			fmt.Errorf("%s is a final status", s),
		)
	}
	return nil
}

// AdvanceTo checks the strict transition rules: staying in place or moving
// exactly one step forward. It includes the ValidateChangeTo rule.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := s.ValidateChangeTo(next); err != nil {
		return "", err
	}
	if err := next.Validate(); err != nil {
		return "", err
	}

	from, to := s.position(), next.position()
	if from >= 0 && to != from && to != from+1 {
		return "", errs.NewValueIsInvalidError(
			"status",
			fmt.Sprintf(msgTransitionIsNotAllowed, s, next),
		)
	}
	return next, nil
}

// ValidateDelete checks that an order in status s may be removed.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			MsgDeleteRequiresPending,
			fmt.Errorf("status is %q", string(s)),
		)
	}
	return nil
}

func (s Status) position() int {
	for i, status := range lifecycle {
		if s == status {
			return i
		}
	}
	return -1
}
