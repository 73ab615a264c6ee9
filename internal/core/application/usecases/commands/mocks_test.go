package commands_test

import (
	"context"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) List(ctx context.Context) ([]dish.Dish, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dish.Dish), args.Error(1)
}

func (m *MockDishRepository) Find(ctx context.Context, id string) (dish.Dish, int, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dish.Dish), args.Int(1), args.Error(2)
}

func (m *MockDishRepository) Contains(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDishRepository) Append(ctx context.Context, d dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) ReplaceAt(ctx context.Context, index int, d dish.Dish) error {
	args := m.Called(ctx, index, d)
	return args.Error(0)
}

func (m *MockDishRepository) RemoveAt(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) List(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, id string) (order.Order, int, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderRepository) Contains(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, o order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceAt(ctx context.Context, index int, o order.Order) error {
	args := m.Called(ctx, index, o)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveAt(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDishUoWFactory struct{ mock.Mock }

func (m *MockDishUoWFactory) Create() commands.DishUoW {
	args := m.Called()
	return args.Get(0).(commands.DishUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
