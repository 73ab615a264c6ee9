package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes a pending order.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order once it was found and is still pending.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, index, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = DeleteOrderGuards().Run(current); err != nil {
		return err
	}

	if err = orderRepo.RemoveAt(ctx, index); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
