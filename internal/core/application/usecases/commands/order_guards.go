package commands

import (
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

const (
	msgOrderDishesAreRequired    = "Order must include at least one dish"
	msgOrderDeliverToIsRequired  = "Order must include a deliverTo"
	msgOrderMobileNumberRequired = "Order must include a mobileNumber"
	msgOrderIDDoesNotMatch       = "Order id does not match route id. Order: %s, Route: %s"
)

// OrderRequest is what the order guards inspect.
// RouteID and Current are empty for creates; for updates Current is the
// stored order loaded by the existence guard.
type OrderRequest struct {
	RouteID string
	Payload OrderPayload
	Current order.Order

	// StrictTransitions limits status changes to one step forward.
	StrictTransitions bool
}

// CreateOrderGuards returns the checks run before an order is created:
// dishes, deliverTo, mobileNumber, dish quantities.
func CreateOrderGuards() guard.Chain[OrderRequest] {
	return guard.NewChain(
		orderDishesArePresent,
		orderDeliverToIsPresent,
		orderMobileNumberIsPresent,
		orderQuantitiesAreValid,
	)
}

// UpdateOrderGuards returns the checks run after the order was found and
// before it is replaced.
func UpdateOrderGuards() guard.Chain[OrderRequest] {
	return guard.NewChain(
		orderIDMatchesRoute,
		orderStatusIsValid,
		orderStatusMayChange,
		orderDeliverToIsPresent,
		orderDishesArePresent,
		orderMobileNumberIsPresent,
		orderQuantitiesAreValid,
	)
}

// DeleteOrderGuards returns the checks run against the stored order before
// it is removed.
func DeleteOrderGuards() guard.Chain[order.Order] {
	return guard.NewChain(orderIsPending)
}

func orderDishesArePresent(req OrderRequest) error {
	if !req.Payload.Dishes.IsArray() || req.Payload.Dishes.Len() == 0 {
		return errs.NewValueIsRequiredError("dishes", msgOrderDishesAreRequired)
	}
	return nil
}

func orderDeliverToIsPresent(req OrderRequest) error {
	if !req.Payload.DeliverTo.IsPresent() {
		return errs.NewValueIsRequiredError("deliverTo", msgOrderDeliverToIsRequired)
	}
	return nil
}

func orderMobileNumberIsPresent(req OrderRequest) error {
	if !req.Payload.MobileNumber.IsPresent() {
		return errs.NewValueIsRequiredError("mobileNumber", msgOrderMobileNumberRequired)
	}
	return nil
}

// orderQuantitiesAreValid reports the first line whose quantity is not a
// positive integer.
func orderQuantitiesAreValid(req OrderRequest) error {
	for i, item := range req.Payload.Dishes.Items() {
		if !item.Quantity.IsPositiveInteger() {
			return order.QuantityError(i, nil)
		}
	}
	return nil
}

func orderIDMatchesRoute(req OrderRequest) error {
	return idMatchesRoute(req.Payload.ID, req.RouteID, msgOrderIDDoesNotMatch)
}

func orderStatusIsValid(req OrderRequest) error {
	if !req.Payload.Status.IsPresent() {
		return errs.NewValueIsRequiredError("status", order.MsgStatusIsRequired)
	}
	_, err := order.ParseStatus(req.Payload.Status.Value())
	return err
}

// orderStatusMayChange compares the submitted status with the stored one.
func orderStatusMayChange(req OrderRequest) error {
	next := order.Status(req.Payload.Status.Value())
	if req.StrictTransitions {
		_, err := req.Current.Status.AdvanceTo(next)
		return err
	}
	return req.Current.Status.ValidateChangeTo(next)
}

func orderIsPending(current order.Order) error {
	return current.Status.ValidateDelete()
}
