package http

import (
	"net/http"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRestaurant handles POST /api/restaurants. Admins only.
func (s *Server) CreateRestaurant(c echo.Context) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}
	if !p.IsAdmin() {
		return forbidden(c, msgAdminOnly)
	}

	var body servers.CreateRestaurantJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	cmd, err := commands.NewCreateRestaurantCommand(body.Name, body.ManagersIds)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.CreateRestaurant.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type != commands.CreateRestaurantSucceeded {
		return badRequest(c, result.Errors...)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/restaurants/"+result.RestaurantID.String())
	return c.JSON(http.StatusCreated, servers.CreateRestaurantResponse{RestaurantId: result.RestaurantID.Value()})
}

// GetRestaurant handles GET /api/restaurants/{id}. Anonymous callers get the
// public fields.
func (s *Server) GetRestaurant(c echo.Context, id string) error {
	query, err := queries.NewGetRestaurantByIDQuery(id, principal(c))
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.GetRestaurantByID.Handle(c.Request().Context(), query)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type == queries.GetRestaurantByIDRestaurantNotFound {
		return notFound(c, result.Errors...)
	}

	return c.JSON(http.StatusOK, servers.RestaurantResponse{Restaurant: restaurantFromView(result.Restaurant)})
}

// GetRestaurantOrders handles GET /api/restaurants/{id}/orders.
func (s *Server) GetRestaurantOrders(c echo.Context, id string, params servers.GetRestaurantOrdersParams) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(id, params.PageSize, params.PageNumber, p, p.IsAdmin())
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.GetRestaurantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.unexpected(c, err)
	}

	switch result.Type {
	case queries.GetRestaurantOrdersRestaurantNotFound:
		return notFound(c, result.Errors...)
	case queries.GetRestaurantOrdersNoAccess:
		return forbidden(c, result.Errors...)
	default:
		return c.JSON(http.StatusOK, ordersPage(result.Orders))
	}
}
