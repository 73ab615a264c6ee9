package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/generated/servers"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const msgInvalidRequestBody = "Invalid request body"

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups the use cases the Server dispatches to.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler

	ListDishes queries.ListDishesQueryHandler
	GetDish    queries.GetDishQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: dishes})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	var body servers.Data[commands.DishPayload]
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDishCommand(body.Data)
	if err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Data[any]{Data: created})
}

// GetDish handles GET /dishes/:dishId.
func (s *Server) GetDish(ctx echo.Context, dishID string) error {
	query, err := queries.NewGetDishQuery(dishID)
	if err != nil {
		return err
	}

	found, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: found})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(ctx echo.Context, dishID string) error {
	var body servers.Data[commands.DishPayload]
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDishCommand(dishID, body.Data)
	if err != nil {
		return err
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: updated})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: orders})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.Data[commands.OrderPayload]
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(body.Data)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Data[any]{Data: created})
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: found})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context, orderID string) error {
	var body servers.Data[commands.OrderPayload]
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, body.Data)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Data[any]{Data: updated})
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// bindBody decodes the JSON request body. An empty body leaves dst untouched
// so the guards report the first missing field.
func bindBody(ctx echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", msgInvalidRequestBody, err)
	}
	return nil
}
