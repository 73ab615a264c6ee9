package memory

import (
	"context"
	"fmt"
	"slices"

	"grubdash/internal/pkg/errs"
)

// record is implemented by every entity the store keeps.
type record interface {
	Identity() string
}

// collection is the working copy of one entity kind inside a unit of work.
type collection[T record] struct {
	kind  string
	items []T
	clone func(T) T
	tx    *UnitOfWork
}

func newCollection[T record](kind string, items []T, clone func(T) T, tx *UnitOfWork) *collection[T] {
	return &collection[T]{
		kind:  kind,
		items: cloneAll(items, clone),
		clone: clone,
		tx:    tx,
	}
}

// List returns a copy of every record in insertion order.
func (c *collection[T]) List(_ context.Context) ([]T, error) {
	if err := c.tx.ensureActive(); err != nil {
		return nil, err
	}
	return cloneAll(c.items, c.clone), nil
}

// Find returns the record with the given id and its index.
func (c *collection[T]) Find(_ context.Context, id string) (T, int, error) {
	var zero T
	if err := c.tx.ensureActive(); err != nil {
		return zero, -1, err
	}
	index := c.indexOf(id)
	if index < 0 {
		return zero, -1, errs.NewObjectNotFoundError(c.kind, id)
	}
	return c.clone(c.items[index]), index, nil
}

// Contains reports whether a record with the given id exists.
func (c *collection[T]) Contains(_ context.Context, id string) (bool, error) {
	if err := c.tx.ensureActive(); err != nil {
		return false, err
	}
	return c.indexOf(id) >= 0, nil
}

// Append adds a record at the end of the collection.
func (c *collection[T]) Append(_ context.Context, r T) error {
	if err := c.tx.ensureActive(); err != nil {
		return err
	}
	c.items = append(c.items, c.clone(r))
	c.tx.markDirty()
	return nil
}

// ReplaceAt swaps the record at index.
func (c *collection[T]) ReplaceAt(_ context.Context, index int, r T) error {
	if err := c.tx.ensureActive(); err != nil {
		return err
	}
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.items[index] = c.clone(r)
	c.tx.markDirty()
	return nil
}

// RemoveAt deletes the record at index.
func (c *collection[T]) RemoveAt(_ context.Context, index int) error {
	if err := c.tx.ensureActive(); err != nil {
		return err
	}
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.items = slices.Delete(c.items, index, index+1)
	c.tx.markDirty()
	return nil
}

func (c *collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(r T) bool {
		return r.Identity() == id
	})
}

func (c *collection[T]) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"index",
			"",
			fmt.Errorf("%s index %d is outside [0, %d)", c.kind, index, len(c.items)),
		)
	}
	return nil
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
