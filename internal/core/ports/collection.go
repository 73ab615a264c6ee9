// Package ports defines the Entity Store contracts for dishes and orders.
// These interfaces establish contracts between the application layer and the
// storage adapter, enabling dependency inversion and testability.
package ports

import "context"

// Collection is an ordered, id-indexed set of records of one entity kind.
// Records keep their insertion order; indexes returned by Find are valid until
// the next Append or RemoveAt.
type Collection[T any] interface {
	// List returns every record in insertion order.
	List(ctx context.Context) ([]T, error)

	// Find returns the record with the given id and its index.
	// Returns an errs.ObjectNotFoundError naming the id and entity kind when absent.
	Find(ctx context.Context, id string) (T, int, error)

	// Contains reports whether a record with the given id exists.
	Contains(ctx context.Context, id string) (bool, error)

	// Append adds a record at the end of the collection.
	Append(ctx context.Context, record T) error

	// ReplaceAt swaps the record at index for record.
	ReplaceAt(ctx context.Context, index int, record T) error

	// RemoveAt deletes the record at index, shifting later records down.
	RemoveAt(ctx context.Context, index int) error
}
