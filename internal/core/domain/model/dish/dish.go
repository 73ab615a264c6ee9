package dish

import (
	"errors"
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Kind names the entity in not-found messages.
const Kind = "dish"

// Dish is a menu entry.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// Validate checks the invariants a stored dish must satisfy.
// Request payloads are checked field by field before a Dish is built; this is
// the last line for records arriving from other sources such as seed data.
func (d Dish) Validate() error {
	var problems []error
	if d.ID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id", "Dish must have an id"))
	}
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name", "Dish must include a name"))
	}
	if d.Description == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description", "Dish must include a description"))
	}
	if d.Price <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"price",
			"Dish must have a price that is an integer greater than 0",
			fmt.Errorf("%d is not greater than 0", d.Price),
		))
	}
	if d.ImageURL == "" {
		problems = append(problems, errs.NewValueIsRequiredError("image_url", "Dish must include an image_url"))
	}
	return errors.Join(problems...)
}

// Identity returns the dish id.
func (d Dish) Identity() string {
	return d.ID
}
