package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces candidate record identifiers.
//
// The zero value is not usable; create one with NewIDGenerator, or wrap any
// func() string to get a deterministic generator in tests:
//
//	ids := kernel.IDGenerator(func() string { return "fixed" })
type IDGenerator func() string

// NewIDGenerator returns a generator of 32-character hex identifiers backed by
// random (version 4) UUIDs.
func NewIDGenerator() IDGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

// Next returns a candidate for which taken reports false.
// Candidates are drawn until one is free, so the generator must eventually
// produce an unused value.
//
// Example:
//
//	id := ids.Next(func(candidate string) bool {
//	    ok, _ := repo.Contains(ctx, candidate)
//	    return ok
//	})
func (g IDGenerator) Next(taken func(id string) bool) string {
	for {
		id := g()
		if id != "" && !taken(id) {
			return id
		}
	}
}
