package commands

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full replacement of a stored order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	payload OrderPayload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command replacing the order at orderID.
func NewUpdateOrderCommand(orderID string, payload OrderPayload) (UpdateOrderCommand, error) {
	if orderID == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderId", "")
	}

	return UpdateOrderCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the route id of the order to replace.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Payload returns the submitted order payload.
func (c UpdateOrderCommand) Payload() OrderPayload {
	return c.payload
}
