package commands

import (
	"context"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// CreateOrderCommandHandler mints an id and appends the new order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.NewIDGenerator())
//	cmd, _ := NewCreateOrderCommand(payload)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        kernel.IDGenerator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, ids kernel.IDGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle stores the order and returns it with its new id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Order, error) {
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
	id, err := nextID(ctx, h.ids, orderRepo)
	if err != nil {
		return order.Order{}, err
	}

	created := cmd.Payload().Order(id, cmd.Status())
	if err = orderRepo.Append(ctx, created); err != nil {
		return order.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	return created, nil
}
