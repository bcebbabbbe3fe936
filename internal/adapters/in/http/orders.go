package http

import (
	"net/http"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/order"
	"haul/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders. The caller becomes the customer.
func (s *Server) CreateOrder(c echo.Context) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	cmd, err := commands.NewCreateOrderCommand(body.RestaurantId, p.Username, body.Details)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type != commands.CreateOrderSucceeded {
		return badRequest(c, result.Errors...)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/orders/"+result.OrderID.String())
	return c.JSON(http.StatusCreated, servers.CreateOrderResponse{Id: result.OrderID.Value()})
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(c echo.Context, id string) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.GetOrderByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type == queries.GetOrderByIDOrderNotFound {
		return notFound(c, result.Errors...)
	}
	if !s.policy.CanViewOrder(p, result.Order, result.RestaurantManagers) {
		return forbidden(c, msgOrderNotVisible)
	}

	return c.JSON(http.StatusOK, servers.OrderResponse{Order: orderFromDomain(result.Order)})
}

// UpdateOrder handles PUT /api/orders/{id}.
func (s *Server) UpdateOrder(c echo.Context, id string) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	var body servers.UpdateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status, p.Username, p.IsAdmin())
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}

	switch result.Type {
	case commands.UpdateOrderStatusOrderNotFound:
		return notFound(c, result.Errors...)
	case commands.UpdateOrderStatusForbidden:
		return forbidden(c, result.Errors...)
	case commands.UpdateOrderStatusWrongOrderStatus:
		return badRequest(c, result.Errors...)
	default:
		return c.NoContent(http.StatusOK)
	}
}
