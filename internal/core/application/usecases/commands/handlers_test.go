package commands_test

import (
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dishUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (d dishUoWFactory) Create() commands.DishUoW { return d.f.Create() }

type orderUoWFactory struct{ f *memory.UnitOfWorkFactory }

func (o orderUoWFactory) Create() commands.OrderUoW { return o.f.Create() }

type fixture struct {
	store  *memory.Store
	dishes dishUoWFactory
	orders orderUoWFactory
}

func newFixture(t *testing.T, seed memory.SeedData) fixture {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(t.Context(), seed))
	factory := memory.NewUnitOfWorkFactory(store)
	return fixture{store: store, dishes: dishUoWFactory{factory}, orders: orderUoWFactory{factory}}
}

func storedOrder(id string, status order.Status) order.Order {
	return order.Order{
		ID:           id,
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Status:       status,
		Dishes:       []order.Item{{DishID: "d1", Quantity: 1}},
	}
}

func TestDishHandlers_CreateThenUpdate(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{})

	create := commands.NewCreateDishCommandHandler(fx.dishes, kernel.NewIDGenerator())
	createCmd, err := commands.NewCreateDishCommand(dishPayload(t, validDish))
	require.NoError(t, err)

	created, err := create.Handle(ctx, createCmd)
	require.NoError(t, err)
	assert.Len(t, created.ID, 32)

	stored, err := fx.store.Dish(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)

	update := commands.NewUpdateDishCommandHandler(fx.dishes)

	t.Run("omitted id defaults to route id", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand(created.ID, dishPayload(t, `{"name":"Shawarma","description":"Wrapped","price":12,"image_url":"u"}`))
		require.NoError(t, err)

		updated, err := update.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Shawarma", updated.Name)
		assert.Equal(t, 12, updated.Price)
	})

	t.Run("id mismatch leaves the dish untouched", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand(created.ID, dishPayload(t, `{"id":"other","name":"X","description":"Y","price":1,"image_url":"u"}`))
		require.NoError(t, err)

		_, err = update.Handle(ctx, cmd)
		assertRejected(t, err, "Dish id does not match route id. Dish: other, Route: "+created.ID)

		current, err := fx.store.Dish(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Shawarma", current.Name)
	})

	t.Run("unknown dish is not found", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand("nope", dishPayload(t, `{}`))
		require.NoError(t, err)

		_, err = update.Handle(ctx, cmd)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Equal(t, "Could not find dish ID: nope", errs.MessageOf(err))
	})
}

func TestUpdateOrderCommandHandler_DeliveredLock(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{Orders: []order.Order{storedOrder("o1", order.Delivered)}})
	h := commands.NewUpdateOrderCommandHandler(fx.orders, false)

	cmd, err := commands.NewUpdateOrderCommand("o1", orderPayload(t, `{"deliverTo":"a","mobileNumber":"1","status":"pending","dishes":[{"quantity":1}]}`))
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	assertRejected(t, err, "A delivered order cannot be changed")

	stored, err := fx.store.Order(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, storedOrder("o1", order.Delivered), stored)
}

func TestUpdateOrderCommandHandler_ReplacesWholeRecord(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{Orders: []order.Order{
		storedOrder("o1", order.Pending),
		storedOrder("o2", order.Pending),
	}})
	h := commands.NewUpdateOrderCommandHandler(fx.orders, false)

	cmd, err := commands.NewUpdateOrderCommand("o2", orderPayload(t, `{"id":"o2","deliverTo":"b","mobileNumber":"2","status":"out-for-delivery","dishes":[{"dishId":"d9","quantity":4}]}`))
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	orders, err := fx.store.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, storedOrder("o1", order.Pending), orders[0])
	assert.Equal(t, updated, orders[1])
	assert.Equal(t, []order.Item{{DishID: "d9", Quantity: 4}}, orders[1].Dishes)
}

func TestDeleteOrderCommandHandler(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{Orders: []order.Order{
		storedOrder("pending", order.Pending),
		storedOrder("preparing", order.Preparing),
	}})
	h := commands.NewDeleteOrderCommandHandler(fx.orders)

	t.Run("non-pending order is kept", func(t *testing.T) {
		cmd, _ := commands.NewDeleteOrderCommand("preparing")
		assertRejected(t, h.Handle(ctx, cmd), "An order cannot be deleted unless it is pending.")

		_, err := fx.store.Order(ctx, "preparing")
		require.NoError(t, err)
	})

	t.Run("pending order is removed once", func(t *testing.T) {
		cmd, _ := commands.NewDeleteOrderCommand("pending")
		require.NoError(t, h.Handle(ctx, cmd))

		err := h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "Could not find order ID: pending", errs.MessageOf(err))

		orders, err := fx.store.Orders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "preparing", orders[0].ID)
	})
}

func TestCreateOrderCommandHandler_AppendsInOrder(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{Orders: []order.Order{storedOrder("o1", order.Pending)}})
	h := commands.NewCreateOrderCommandHandler(fx.orders, sequence("o1", "o2"))

	cmd, err := commands.NewCreateOrderCommand(orderPayload(t, validOrder))
	require.NoError(t, err)

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "o2", created.ID)
	assert.Equal(t, order.Pending, created.Status)

	orders, err := fx.store.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, created, orders[1])
}

func TestCreateHandlers_RejectIntegersOutsideIntRange(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t, memory.SeedData{})

	t.Run("dish price", func(t *testing.T) {
		_, err := commands.NewCreateDishCommand(dishPayload(t, `{"name":"n","description":"d","price":1e20,"image_url":"u"}`))
		assertRejected(t, err, "Dish must have a price that is an integer greater than 0")

		dishes, err := fx.store.Dishes(ctx)
		require.NoError(t, err)
		assert.Empty(t, dishes)
	})

	t.Run("order quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(orderPayload(t, `{"deliverTo":"a","mobileNumber":"1","dishes":[{"dishId":"d1","quantity":1e19}]}`))
		assertRejected(t, err, "dish 0 must have a quantity that is an integer greater than 0")

		orders, err := fx.store.Orders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("large integers are stored exactly", func(t *testing.T) {
		h := commands.NewCreateDishCommandHandler(fx.dishes, sequence("big"))
		cmd, err := commands.NewCreateDishCommand(dishPayload(t, `{"name":"n","description":"d","price":9007199254740993,"image_url":"u"}`))
		require.NoError(t, err)

		created, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		require.NoError(t, created.Validate())

		stored, err := fx.store.Dish(ctx, "big")
		require.NoError(t, err)
		assert.Equal(t, 9007199254740993, stored.Price)
	})
}
