package commands

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents a full replacement of a stored dish.
// The payload is checked by the handler once the dish has been found.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID  string
	payload DishPayload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command replacing the dish at dishID.
func NewUpdateDishCommand(dishID string, payload DishPayload) (UpdateDishCommand, error) {
	if dishID == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dishId", "")
	}

	return UpdateDishCommand{
		dishID:  dishID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the route id of the dish to replace.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Payload returns the submitted dish payload.
func (c UpdateDishCommand) Payload() DishPayload {
	return c.payload
}
