package commands_test

import (
	"encoding/json"
	"testing"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validDish  = `{"name":"Falafel","description":"Crispy","price":10,"image_url":"https://img/falafel"}`
	validOrder = `{"deliverTo":"308 Negra Arroyo Lane","mobileNumber":"(505) 143-3369","status":"pending","dishes":[{"dishId":"d1","quantity":2}]}`
)

func dishPayload(t *testing.T, body string) commands.DishPayload {
	t.Helper()
	var p commands.DishPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func orderPayload(t *testing.T, body string) commands.OrderPayload {
	t.Helper()
	var p commands.OrderPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

// assertRejected checks that err is a bad request carrying msg.
func assertRejected(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, errs.KindBadRequest, errs.KindOf(err))
	assert.Equal(t, msg, errs.MessageOf(err))
}

func TestCreateDishGuards(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"empty body", `{}`, "Dish must include a name"},
		{"empty name", `{"name":"","description":"d","price":1,"image_url":"u"}`, "Dish must include a name"},
		{"non-string name", `{"name":7,"description":"d","price":1,"image_url":"u"}`, "Dish must include a name"},
		{"missing description", `{"name":"n","price":1,"image_url":"u"}`, "Dish must include a description"},
		{"missing price", `{"name":"n","description":"d","image_url":"u"}`, "Dish must include a price"},
		{"null price", `{"name":"n","description":"d","price":null,"image_url":"u"}`, "Dish must include a price"},
		{"zero price", `{"name":"n","description":"d","price":0,"image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"negative price", `{"name":"n","description":"d","price":-1,"image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"fractional price", `{"name":"n","description":"d","price":5.5,"image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"string price", `{"name":"n","description":"d","price":"10","image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"price above int range", `{"name":"n","description":"d","price":1e20,"image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"price one above max int64", `{"name":"n","description":"d","price":9223372036854775808,"image_url":"u"}`, "Dish must have a price that is an integer greater than 0"},
		{"missing image", `{"name":"n","description":"d","price":1}`, "Dish must include an image_url"},
	}

	chain := commands.CreateDishGuards()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := chain.Run(commands.DishRequest{Payload: dishPayload(t, tc.body)})
			assertRejected(t, err, tc.want)
		})
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, chain.Run(commands.DishRequest{Payload: dishPayload(t, validDish)}))
	})

	t.Run("integer above 2^53 is kept exact", func(t *testing.T) {
		p := dishPayload(t, `{"name":"n","description":"d","price":9007199254740993,"image_url":"u"}`)
		require.NoError(t, chain.Run(commands.DishRequest{Payload: p}))
		assert.Equal(t, 9007199254740993, p.Dish("d1").Price)
	})
}

func TestUpdateDishGuards(t *testing.T) {
	chain := commands.UpdateDishGuards()
	assert.Equal(t, commands.CreateDishGuards().Len()+1, chain.Len())

	t.Run("id mismatch runs first", func(t *testing.T) {
		err := chain.Run(commands.DishRequest{RouteID: "route", Payload: dishPayload(t, `{"id":"other"}`)})
		assertRejected(t, err, "Dish id does not match route id. Dish: other, Route: route")
	})

	t.Run("non-string id never matches", func(t *testing.T) {
		err := chain.Run(commands.DishRequest{RouteID: "5", Payload: dishPayload(t, `{"id":5}`)})
		assertRejected(t, err, "Dish id does not match route id. Dish: 5, Route: 5")
	})

	for _, body := range []string{
		validDish,
		`{"id":"","name":"n","description":"d","price":1,"image_url":"u"}`,
		`{"id":null,"name":"n","description":"d","price":1,"image_url":"u"}`,
		`{"id":0,"name":"n","description":"d","price":1,"image_url":"u"}`,
		`{"id":false,"name":"n","description":"d","price":1,"image_url":"u"}`,
		`{"id":"route","name":"n","description":"d","price":1,"image_url":"u"}`,
	} {
		t.Run("accepts "+body, func(t *testing.T) {
			require.NoError(t, chain.Run(commands.DishRequest{RouteID: "route", Payload: dishPayload(t, body)}))
		})
	}

	t.Run("field checks follow", func(t *testing.T) {
		err := chain.Run(commands.DishRequest{RouteID: "route", Payload: dishPayload(t, `{"id":"route","name":"n"}`)})
		assertRejected(t, err, "Dish must include a description")
	})
}

func TestCreateOrderGuards(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{"empty body", `{}`, "Order must include at least one dish"},
		{"dishes not an array", `{"deliverTo":"a","mobileNumber":"1","dishes":"pizza"}`, "Order must include at least one dish"},
		{"empty dishes", `{"deliverTo":"a","mobileNumber":"1","dishes":[]}`, "Order must include at least one dish"},
		{"missing deliverTo", `{"mobileNumber":"1","dishes":[{"quantity":1}]}`, "Order must include a deliverTo"},
		{"missing mobileNumber", `{"deliverTo":"a","dishes":[{"quantity":1}]}`, "Order must include a mobileNumber"},
		{"missing quantity", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"dishId":"d1"}]}`, "dish 0 must have a quantity that is an integer greater than 0"},
		{"zero quantity", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":0}]}`, "dish 0 must have a quantity that is an integer greater than 0"},
		{"fractional quantity", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":1.5}]}`, "dish 0 must have a quantity that is an integer greater than 0"},
		{"quantity above int range", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":1e19}]}`, "dish 0 must have a quantity that is an integer greater than 0"},
		{"quantity below int range", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":-1e19}]}`, "dish 0 must have a quantity that is an integer greater than 0"},
		{"first bad index", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":1},{"quantity":"2"},{"quantity":0}]}`, "dish 1 must have a quantity that is an integer greater than 0"},
	}

	chain := commands.CreateOrderGuards()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := chain.Run(commands.OrderRequest{Payload: orderPayload(t, tc.body)})
			assertRejected(t, err, tc.want)
		})
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, chain.Run(commands.OrderRequest{Payload: orderPayload(t, validOrder)}))
	})

	t.Run("status is not checked", func(t *testing.T) {
		body := `{"deliverTo":"a","mobileNumber":"1","status":"invalid","dishes":[{"quantity":1}]}`
		require.NoError(t, chain.Run(commands.OrderRequest{Payload: orderPayload(t, body)}))
	})
}

func TestUpdateOrderGuards(t *testing.T) {
	pending := order.Order{ID: "o1", Status: order.Pending}
	delivered := order.Order{ID: "o1", Status: order.Delivered}

	withStatus := func(status string) string {
		return `{"deliverTo":"a","mobileNumber":"1","status":"` + status + `","dishes":[{"quantity":1}]}`
	}

	testCases := []struct {
		name    string
		body    string
		current order.Order
		strict  bool
		want    string
	}{
		{"id mismatch", `{"id":"o2","status":"pending"}`, pending, false, "Order id does not match route id. Order: o2, Route: o1"},
		{"missing status", `{"deliverTo":"a","mobileNumber":"1","dishes":[{"quantity":1}]}`, pending, false, order.MsgStatusIsRequired},
		{"empty status", withStatus(""), pending, false, order.MsgStatusIsRequired},
		{"invalid literal", withStatus("invalid"), pending, false, order.MsgStatusIsRequired},
		{"unknown status", withStatus("cancelled"), pending, false, order.MsgStatusIsRequired},
		{"delivered lock", withStatus("pending"), delivered, false, "A delivered order cannot be changed"},
		{"delivered lock strict", withStatus("preparing"), delivered, true, "A delivered order cannot be changed"},
		{"strict skip", withStatus("delivered"), pending, true, "Order status cannot change from pending to delivered"},
		{"strict backwards", withStatus("pending"), order.Order{ID: "o1", Status: order.Preparing}, true, "Order status cannot change from preparing to pending"},
		{"status before deliverTo", `{"status":"preparing"}`, pending, false, "Order must include a deliverTo"},
		{"deliverTo before dishes", `{"status":"preparing","deliverTo":"a"}`, pending, false, "Order must include at least one dish"},
		{"dishes before mobileNumber", `{"status":"preparing","deliverTo":"a","dishes":[{"quantity":0}]}`, pending, false, "Order must include a mobileNumber"},
		{"quantities last", `{"deliverTo":"a","mobileNumber":"1","status":"preparing","dishes":[{"quantity":-1}]}`, pending, false, "dish 0 must have a quantity that is an integer greater than 0"},
	}

	chain := commands.UpdateOrderGuards()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := chain.Run(commands.OrderRequest{
				RouteID:           "o1",
				Payload:           orderPayload(t, tc.body),
				Current:           tc.current,
				StrictTransitions: tc.strict,
			})
			assertRejected(t, err, tc.want)
		})
	}

	accepted := []struct {
		name    string
		status  string
		current order.Order
		strict  bool
	}{
		{"lenient jump", "delivered", pending, false},
		{"lenient backwards", "pending", order.Order{Status: order.OutForDelivery}, false},
		{"delivered stays delivered", "delivered", delivered, false},
		{"strict advance", "preparing", pending, true},
		{"strict stay", "pending", pending, true},
	}
	for _, tc := range accepted {
		t.Run("accepts "+tc.name, func(t *testing.T) {
			err := chain.Run(commands.OrderRequest{
				RouteID:           "o1",
				Payload:           orderPayload(t, withStatus(tc.status)),
				Current:           tc.current,
				StrictTransitions: tc.strict,
			})
			require.NoError(t, err)
		})
	}
}

func TestDeleteOrderGuards(t *testing.T) {
	chain := commands.DeleteOrderGuards()

	require.NoError(t, chain.Run(order.Order{Status: order.Pending}))

	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			assertRejected(t, chain.Run(order.Order{Status: status}), "An order cannot be deleted unless it is pending.")
		})
	}
}

func TestGuardsAreRepeatable(t *testing.T) {
	payload := dishPayload(t, `{"name":"n","description":"d","price":0,"image_url":"u"}`)
	chain := commands.CreateDishGuards()

	first := chain.Run(commands.DishRequest{Payload: payload})
	second := chain.Run(commands.DishRequest{Payload: payload})

	assert.Equal(t, errs.MessageOf(first), errs.MessageOf(second))
}
