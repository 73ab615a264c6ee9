package commands

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// CreateDishCommandHandler mints an id and appends the new dish.
type CreateDishCommandHandler struct {
	uowFactory DishUoWFactory
	ids        kernel.IDGenerator
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(uowFactory DishUoWFactory, ids kernel.IDGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle stores the dish and returns it with its new id.
func (h *CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (dish.Dish, error) {
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
	id, err := nextID(ctx, h.ids, dishRepo)
	if err != nil {
		return dish.Dish{}, err
	}

	created := cmd.Payload().Dish(id)
	if err = dishRepo.Append(ctx, created); err != nil {
		return dish.Dish{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return dish.Dish{}, err
	}

	return created, nil
}

type idLookup interface {
	Contains(ctx context.Context, id string) (bool, error)
}

// nextID draws ids until one is unused in repo.
func nextID(ctx context.Context, ids kernel.IDGenerator, repo idLookup) (string, error) {
	var lookupErr error
	id := ids.Next(func(candidate string) bool {
		exists, err := repo.Contains(ctx, candidate)
		if err != nil {
			lookupErr = err
			return false
		}
		return exists
	})
	if lookupErr != nil {
		return "", lookupErr
	}
	return id, nil
}
