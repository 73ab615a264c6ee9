package ports

import "grubdash/internal/core/domain/model/order"

// OrderRepository stores orders.
type OrderRepository interface {
	Collection[order.Order]
}
