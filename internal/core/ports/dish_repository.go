package ports

import "grubdash/internal/core/domain/model/dish"

// DishRepository stores dishes. Dishes are never removed by the API, but the
// full Collection contract is kept so every store behaves the same.
type DishRepository interface {
	Collection[dish.Dish]
}
