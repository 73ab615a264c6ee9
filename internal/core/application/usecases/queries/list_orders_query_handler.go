package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// ListOrdersQueryHandler lists orders from the store.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

// NewListOrdersQueryHandler creates a handler reading from reader.
func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns every order; an empty store yields an empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.Orders(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]order.Order, 0)
	}
	return orders, nil
}
