package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler reading from reader.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order, or an errs.ObjectNotFoundError when it does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Order, error) {
	if err := query.Validate(); err != nil {
		return order.Order{}, err
	}
	return h.reader.Order(ctx, query.OrderID())
}
