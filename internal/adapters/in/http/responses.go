package http

import (
	"net/http"

	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/order"
	"haul/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	msgUnauthorized    = "You are not authorized to access this resource."
	msgAdminOnly       = "You do not have permission to access this resource."
	msgUnexpected      = "An unexpected error occurred"
	msgInvalidBody     = "Invalid request body"
	msgOrderNotVisible = "You are not authorized to view this order."
)

func errorBody(messages ...string) servers.ErrorResponse {
	return servers.ErrorResponse{Errors: messages}
}

func badRequest(c echo.Context, messages ...string) error {
	return c.JSON(http.StatusBadRequest, errorBody(messages...))
}

func notFound(c echo.Context, messages ...string) error {
	return c.JSON(http.StatusNotFound, errorBody(messages...))
}

func forbidden(c echo.Context, messages ...string) error {
	return c.JSON(http.StatusForbidden, errorBody(messages...))
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorBody(msgUnauthorized))
}

// unexpected logs err and answers with a generic 500.
func (s *Server) unexpected(c echo.Context, err error) error {
	s.logger.ErrorContext(c.Request().Context(), "Request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errorBody(msgUnexpected))
}

// validationMessages flattens errors joined by a constructor into one message
// per failed rule.
func validationMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // only the top-level join is split
		messages := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			messages = append(messages, validationMessages(e)...)
		}
		return messages
	}
	return []string{err.Error()}
}

func orderFromDomain(o *order.Order) servers.Order {
	return servers.Order{
		Id:            o.ID().Value(),
		RestaurantId:  o.RestaurantID().Value(),
		Details:       o.Details(),
		Status:        servers.OrderStatus(o.Status().String()),
		CreatedAt:     o.CreatedAt(),
		CreatedBy:     o.CreatedBy(),
		LastUpdatedAt: o.LastUpdatedAt(),
	}
}

func orderFromView(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:            v.ID.Value(),
		RestaurantId:  v.RestaurantID.Value(),
		Details:       v.Details,
		Status:        servers.OrderStatus(v.Status.String()),
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

func ordersPage(p queries.Page[queries.OrderView]) servers.OrdersPage {
	items := make([]servers.Order, len(p.Items))
	for i, v := range p.Items {
		items[i] = orderFromView(v)
	}
	return servers.OrdersPage{
		Orders:     items,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
}

func restaurantFromView(v queries.RestaurantView) servers.Restaurant {
	r := servers.Restaurant{
		Id:        v.ID.Value(),
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
	}
	if len(v.Managers) > 0 {
		managers := make([]servers.Manager, len(v.Managers))
		for i, m := range v.Managers {
			managers[i] = servers.Manager{Id: m.UserID.Value(), Username: m.Username}
		}
		r.Managers = &managers
	}
	return r
}
