package commands

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(payload)
//	if err != nil {
//	    return err // "Order must include at least one dish", ...
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	payload OrderPayload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand runs the create-order guards against payload.
// Returns the first failing guard's error.
func NewCreateOrderCommand(payload OrderPayload) (CreateOrderCommand, error) {
	if err := CreateOrderGuards().Run(OrderRequest{Payload: payload}); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Payload returns the validated order payload.
func (c CreateOrderCommand) Payload() OrderPayload {
	return c.payload
}

// Status returns the submitted status when it is a lifecycle status, and
// Pending otherwise. Creation runs no status guard, so an unknown or
// "invalid" value is replaced rather than rejected.
func (c CreateOrderCommand) Status() order.Status {
	status, err := order.ParseStatus(c.payload.Status.Value())
	if err != nil {
		return order.Pending
	}
	return status
}
