package commands

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/field"
)

// DishPayload is the client-submitted body of a dish mutation.
// Fields decode leniently so the guards can report which one is wrong.
type DishPayload struct {
	ID          field.String `json:"id"`
	Name        field.String `json:"name"`
	Description field.String `json:"description"`
	Price       field.Number `json:"price"`
	ImageURL    field.String `json:"image_url"`
}

// Dish builds the record stored for this payload under id.
func (p DishPayload) Dish(id string) dish.Dish {
	return dish.Dish{
		ID:          id,
		Name:        p.Name.Value(),
		Description: p.Description.Value(),
		Price:       p.Price.Int(),
		ImageURL:    p.ImageURL.Value(),
	}
}

// ItemPayload is one submitted order line.
type ItemPayload struct {
	DishID   field.String `json:"dishId"`
	Quantity field.Number `json:"quantity"`
}

// OrderPayload is the client-submitted body of an order mutation.
type OrderPayload struct {
	ID           field.String             `json:"id"`
	DeliverTo    field.String             `json:"deliverTo"`
	MobileNumber field.String             `json:"mobileNumber"`
	Status       field.String             `json:"status"`
	Dishes       field.Array[ItemPayload] `json:"dishes"`
}

// Order builds the record stored for this payload under id with the given status.
func (p OrderPayload) Order(id string, status order.Status) order.Order {
	items := make([]order.Item, 0, p.Dishes.Len())
	for _, item := range p.Dishes.Items() {
		items = append(items, order.Item{
			DishID:   item.DishID.Value(),
			Quantity: item.Quantity.Int(),
		})
	}

	return order.Order{
		ID:           id,
		DeliverTo:    p.DeliverTo.Value(),
		MobileNumber: p.MobileNumber.Value(),
		Status:       status,
		Dishes:       items,
	}
}
