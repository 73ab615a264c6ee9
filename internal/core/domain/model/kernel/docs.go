// Package kernel provides the domain primitives shared by dishes and orders.
//
// The package includes:
//   - IDGenerator: mints record identifiers that are unique within a collection
//
// Identifiers are opaque strings. Records keep the id they were created with;
// it never changes on update.
package kernel
