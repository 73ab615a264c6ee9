package queries

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery retrieves one dish by id.
type GetDishQuery struct {
	dishID string

	guard guard.ConstructorGuard
}

// NewGetDishQuery creates a query for the dish at dishID.
func NewGetDishQuery(dishID string) (GetDishQuery, error) {
	if dishID == "" {
		return GetDishQuery{}, errs.NewValueIsRequiredError("dishId", "")
	}
	return GetDishQuery{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// DishID returns the requested id.
func (q GetDishQuery) DishID() string {
	return q.dishID
}
