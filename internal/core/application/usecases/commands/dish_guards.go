package commands

import (
	"fmt"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/field"
	"grubdash/internal/pkg/guard"
)

const (
	msgDishNameIsRequired        = "Dish must include a name"
	msgDishDescriptionIsRequired = "Dish must include a description"
	msgDishPriceIsRequired       = "Dish must include a price"
	msgDishPriceIsInvalid        = "Dish must have a price that is an integer greater than 0"
	msgDishImageURLIsRequired    = "Dish must include an image_url"
	msgDishIDDoesNotMatch        = "Dish id does not match route id. Dish: %s, Route: %s"
)

// DishRequest is what the dish guards inspect.
// RouteID is empty for creates.
type DishRequest struct {
	RouteID string
	Payload DishPayload
}

var dishFieldChecks = []guard.Check[DishRequest]{
	dishNameIsPresent,
	dishDescriptionIsPresent,
	dishPriceIsValid,
	dishImageURLIsPresent,
}

// CreateDishGuards returns the checks run before a dish is created:
// name, description, price, image_url.
func CreateDishGuards() guard.Chain[DishRequest] {
	return guard.NewChain(dishFieldChecks...)
}

// UpdateDishGuards returns the checks run after the dish was found and before
// it is replaced: id match, then the create checks.
func UpdateDishGuards() guard.Chain[DishRequest] {
	return guard.NewChain(dishIDMatchesRoute).Then(dishFieldChecks...)
}

func dishNameIsPresent(req DishRequest) error {
	if !req.Payload.Name.IsPresent() {
		return errs.NewValueIsRequiredError("name", msgDishNameIsRequired)
	}
	return nil
}

func dishDescriptionIsPresent(req DishRequest) error {
	if !req.Payload.Description.IsPresent() {
		return errs.NewValueIsRequiredError("description", msgDishDescriptionIsRequired)
	}
	return nil
}

func dishPriceIsValid(req DishRequest) error {
	price := req.Payload.Price
	if !price.IsSet() {
		return errs.NewValueIsRequiredError("price", msgDishPriceIsRequired)
	}
	if !price.IsPositiveInteger() {
		return errs.NewValueIsInvalidError("price", msgDishPriceIsInvalid)
	}
	return nil
}

func dishImageURLIsPresent(req DishRequest) error {
	if !req.Payload.ImageURL.IsPresent() {
		return errs.NewValueIsRequiredError("image_url", msgDishImageURLIsRequired)
	}
	return nil
}

// dishIDMatchesRoute passes when the payload omits the id.
func dishIDMatchesRoute(req DishRequest) error {
	return idMatchesRoute(req.Payload.ID, req.RouteID, msgDishIDDoesNotMatch)
}

// idMatchesRoute treats an absent or empty id (null, "", 0, false) as omitted.
// Any other value, including a non-string one, must equal the route id.
func idMatchesRoute(id field.String, routeID, format string) error {
	if id.IsEmpty() {
		return nil
	}
	if !id.IsPresent() || id.Value() != routeID {
		return errs.NewValueIsInvalidError("id", fmt.Sprintf(format, id.Raw(), routeID))
	}
	return nil
}
