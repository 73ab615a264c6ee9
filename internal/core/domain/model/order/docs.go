// Package order provides the Order record and its lifecycle.
//
// The package includes:
//   - Order: a delivery request listing the dishes and quantities ordered
//   - Status: the state machine governing an order's lifecycle
//
// Key business rules:
//   - deliverTo and mobileNumber are non-empty
//   - an order lists at least one dish, each with a positive integer quantity
//   - status is one of pending, preparing, out-for-delivery, delivered
//   - a delivered order cannot change status
//   - an order can only be deleted while pending
package order
