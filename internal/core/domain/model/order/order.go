package order

import (
	"errors"
	"fmt"
	"slices"

	"grubdash/internal/pkg/errs"
)

// Kind names the entity in not-found messages.
const Kind = "order"

// Order is a delivery request.
type Order struct {
	ID           string `json:"id"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       Status `json:"status"`
	Dishes       []Item `json:"dishes"`
}

// Item is one line of an order.
type Item struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// Validate checks the invariants a stored order must satisfy.
// Request payloads are checked field by field before an Order is built; this
// is the last line for records arriving from other sources such as seed data.
func (o Order) Validate() error {
	var problems []error
	if o.ID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id", "Order must have an id"))
	}
	if o.DeliverTo == "" {
		problems = append(problems, errs.NewValueIsRequiredError("deliverTo", "Order must include a deliverTo"))
	}
	if o.MobileNumber == "" {
		problems = append(problems, errs.NewValueIsRequiredError("mobileNumber", "Order must include a mobileNumber"))
	}
	if err := o.Status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(o.Dishes) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("dishes", "Order must include at least one dish"))
	}
	for i, item := range o.Dishes {
		if item.Quantity <= 0 {
			problems = append(problems, QuantityError(i, fmt.Errorf("%d is not greater than 0", item.Quantity)))
		}
	}
	return errors.Join(problems...)
}

// Identity returns the order id.
func (o Order) Identity() string {
	return o.ID
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	o.Dishes = slices.Clone(o.Dishes)
	return o
}

// TotalQuantity returns the number of dishes ordered across all lines.
func (o Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Dishes {
		total += item.Quantity
	}
	return total
}

// QuantityError reports the order line at index whose quantity is not a
// positive integer.
func QuantityError(index int, cause error) error {
	msg := fmt.Sprintf("dish %d must have a quantity that is an integer greater than 0", index)
	if cause == nil {
		return errs.NewValueIsInvalidError(fmt.Sprintf("dishes[%d].quantity", index), msg)
	}
	return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dishes[%d].quantity", index), msg, cause)
}
