package commands

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler replaces a stored order.
//
// Pipeline: the order must exist, then UpdateOrderGuards run against the
// payload and the stored order, then the record at the found index is
// replaced. A delivered order only accepts a delivered status. With strict
// transitions enabled the status may only stay or advance one step.
type UpdateOrderCommandHandler struct {
	uowFactory        OrderUoWFactory
	strictTransitions bool
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, strictTransitions bool) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:        uowFactory,
		strictTransitions: strictTransitions,
	}
}

// Handle replaces the order and returns the stored record.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Order{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, index, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return order.Order{}, err
	}

	req := OrderRequest{
		RouteID:           cmd.OrderID(),
		Payload:           cmd.Payload(),
		Current:           current,
		StrictTransitions: h.strictTransitions,
	}
	if err = UpdateOrderGuards().Run(req); err != nil {
		return order.Order{}, err
	}

	status := order.Status(cmd.Payload().Status.Value())
	updated := cmd.Payload().Order(cmd.OrderID(), status)
	if err = orderRepo.ReplaceAt(ctx, index, updated); err != nil {
		return order.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	return updated, nil
}
