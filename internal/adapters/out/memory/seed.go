package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

//go:embed seed.json
var seedJSON []byte

// SeedData is the initial content of a store.
type SeedData struct {
	Dishes []dish.Dish   `json:"dishes"`
	Orders []order.Order `json:"orders"`
}

// DefaultSeed returns the sample dishes and orders bundled with the service.
func DefaultSeed() (SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return SeedData{}, fmt.Errorf("decode seed data: %w", err)
	}
	return data, nil
}

// Seed validates data and appends it to the store in one transaction.
// Nothing is stored if any record is invalid or duplicates an existing id.
func (s *Store) Seed(ctx context.Context, data SeedData) error {
	uow := NewUnitOfWorkFactory(s).Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dishes := uow.DishRepository()
	for _, d := range data.Dishes {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("seed dish %q: %w", d.ID, err)
		}
		if err := appendUnique[dish.Dish](ctx, dishes, d); err != nil {
			return err
		}
	}

	orders := uow.OrderRepository()
	for _, o := range data.Orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("seed order %q: %w", o.ID, err)
		}
		if err := appendUnique[order.Order](ctx, orders, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

type appender[T record] interface {
	Contains(ctx context.Context, id string) (bool, error)
	Append(ctx context.Context, r T) error
}

func appendUnique[T record](ctx context.Context, c appender[T], r T) error {
	exists, err := c.Contains(ctx, r.Identity())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("seed record %q already exists", r.Identity())
	}
	return c.Append(ctx, r)
}
