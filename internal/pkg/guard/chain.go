package guard

// Check inspects a request and returns nil to pass control to the next check,
// or an error to stop the chain. Checks must not mutate the request.
type Check[T any] func(req T) error

// Chain is an ordered list of checks evaluated fail-fast: the first failing
// check wins and later checks do not run.
//
// Example:
//
//	createDish := guard.NewChain(nameIsPresent, descriptionIsPresent, priceIsValid)
//	if err := createDish.Run(req); err != nil {
//	    return dish.Dish{}, err
//	}
type Chain[T any] struct {
	checks []Check[T]
}

// NewChain builds a chain running checks in the given order.
func NewChain[T any](checks ...Check[T]) Chain[T] {
	return Chain[T]{checks: append([]Check[T](nil), checks...)}
}

// Then returns a new chain with checks appended after the receiver's.
// The receiver is left unchanged.
func (c Chain[T]) Then(checks ...Check[T]) Chain[T] {
	combined := make([]Check[T], 0, len(c.checks)+len(checks))
	combined = append(combined, c.checks...)
	combined = append(combined, checks...)
	return Chain[T]{checks: combined}
}

// Len returns the number of checks in the chain.
func (c Chain[T]) Len() int {
	return len(c.checks)
}

// Run evaluates the checks in order and returns the first error.
func (c Chain[T]) Run(req T) error {
	for _, check := range c.checks {
		if err := check(req); err != nil {
			return err
		}
	}
	return nil
}
