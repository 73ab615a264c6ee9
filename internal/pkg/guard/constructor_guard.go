// Package guard holds the two kinds of guards the service relies on: the
// ConstructorGuard that marks commands and queries as built through their
// constructors, and Chain, the fail-fast driver behind every request validator.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created through its constructor.
// A zero-value guard fails validation, so embedding one in a command struct
// makes `Command{}` distinguishable from `NewCommand(...)`.
//
// Example usage:
//
//	var ErrReadDishQueryIsNotConstructed = errors.New("ReadDishQuery must be created via NewReadDishQuery")
//
//	type ReadDishQuery struct {
//	    dishID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (q ReadDishQuery) Validate() error {
//	    return q.guard.Validate(ErrReadDishQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced with ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
