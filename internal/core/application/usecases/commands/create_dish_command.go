package commands

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a dish to the menu.
//
// Example:
//
//	cmd, err := NewCreateDishCommand(payload)
//	if err != nil {
//	    return err // "Dish must include a name", ...
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	payload DishPayload

	guard guard.ConstructorGuard
}

// NewCreateDishCommand runs the create-dish guards against payload.
// Returns the first failing guard's error.
func NewCreateDishCommand(payload DishPayload) (CreateDishCommand, error) {
	if err := CreateDishGuards().Run(DishRequest{Payload: payload}); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Payload returns the validated dish payload.
func (c CreateDishCommand) Payload() DishPayload {
	return c.payload
}
