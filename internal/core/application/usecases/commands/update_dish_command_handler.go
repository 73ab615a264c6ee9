package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// UpdateDishCommandHandler replaces a stored dish.
//
// Pipeline: the dish must exist, then UpdateDishGuards run in order, then the
// record at the found index is replaced. The stored id never changes.
type UpdateDishCommandHandler struct {
	uowFactory DishUoWFactory
}

// NewUpdateDishCommandHandler creates a handler for dish updates.
func NewUpdateDishCommandHandler(uowFactory DishUoWFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the dish and returns the stored record.
func (h *UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return dish.Dish{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return dish.Dish{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishRepo := uow.DishRepository()
	_, index, err := dishRepo.Find(ctx, cmd.DishID())
	if err != nil {
		return dish.Dish{}, err
	}

	req := DishRequest{RouteID: cmd.DishID(), Payload: cmd.Payload()}
	if err = UpdateDishGuards().Run(req); err != nil {
		return dish.Dish{}, err
	}

	updated := cmd.Payload().Dish(cmd.DishID())
	if err = dishRepo.ReplaceAt(ctx, index, updated); err != nil {
		return dish.Dish{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return dish.Dish{}, err
	}

	return updated, nil
}
