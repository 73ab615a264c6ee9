// Package servers is the HTTP contract of the service: the OpenAPI document,
// the wire types and the echo routing glue that binds path parameters before
// calling a ServerInterface implementation.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error is the body of every failed request.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Data wraps every request and response record.
type Data[T any] struct {
	Data T `json:"data"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /dishes)
	ListDishes(ctx echo.Context) error
	// (POST /dishes)
	CreateDish(ctx echo.Context) error
	// (GET /dishes/{dishId})
	GetDish(ctx echo.Context, dishId string) error
	// (PUT /dishes/{dishId})
	UpdateDish(ctx echo.Context, dishId string) error
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId string) error
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId string) error
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDishes converts echo context to params.
func (w *ServerInterfaceWrapper) ListDishes(ctx echo.Context) error {
	return w.Handler.ListDishes(ctx)
}

// CreateDish converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDish(ctx echo.Context) error {
	return w.Handler.CreateDish(ctx)
}

// GetDish converts echo context to params.
func (w *ServerInterfaceWrapper) GetDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.GetDish(ctx, dishId)
}

// UpdateDish converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDish(ctx echo.Context) error {
	dishId, err := bindPathParam(ctx, "dishId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDish(ctx, dishId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderId)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/dishes", wrapper.ListDishes)
	router.POST(baseURL+"/dishes", wrapper.CreateDish)
	router.GET(baseURL+"/dishes/:dishId", wrapper.GetDish)
	router.PUT(baseURL+"/dishes/:dishId", wrapper.UpdateDish)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
}
