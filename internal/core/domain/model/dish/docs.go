// Package dish provides the Dish record offered by the restaurant.
//
// Key business rules:
//   - name, description and image_url are non-empty
//   - price is a positive integer
//   - the id is minted on create and never changes
//   - dishes are never deleted through the API
package dish
