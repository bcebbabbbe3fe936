package http

import (
	"errors"
	"net/http"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/generated/servers"
	"haul/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/users.
func (s *Server) RegisterUser(c echo.Context) error {
	var body servers.RegisterUserJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	cmd, err := commands.NewRegisterUserCommand(body.Username, body.Password)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type != commands.RegisterUserSucceeded {
		return badRequest(c, result.Errors...)
	}

	return c.NoContent(http.StatusOK)
}

// CreateToken handles POST /api/users/token.
func (s *Server) CreateToken(c echo.Context) error {
	var body servers.CreateTokenJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	cmd, err := commands.NewAuthenticateUserCommand(body.Username, body.Password)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.AuthenticateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type != commands.AuthenticateUserSucceeded {
		return badRequest(c, result.Errors...)
	}

	return c.JSON(http.StatusOK, servers.TokenResponse{Token: result.Token})
}

// GetMe handles GET /api/users/me.
func (s *Server) GetMe(c echo.Context) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	query, err := queries.NewGetMeQuery(p.Username)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	me, err := s.h.GetMe.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(c)
		}
		return s.unexpected(c, err)
	}

	return c.JSON(http.StatusOK, servers.MeResponse{Username: me.Username, Roles: me.Roles})
}

// GetMyOrders handles GET /api/users/me/orders.
func (s *Server) GetMyOrders(c echo.Context, params servers.GetMyOrdersParams) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}

	query, err := queries.NewGetUserOrdersQuery(p.Username, params.PageSize, params.PageNumber)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	page, err := s.h.GetUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.unexpected(c, err)
	}

	return c.JSON(http.StatusOK, ordersPage(page))
}

// AdminUpdateUser handles PUT /api/users/admin.
func (s *Server) AdminUpdateUser(c echo.Context) error {
	p := principal(c)
	if p.IsAnonymous() {
		return unauthorized(c)
	}
	if !p.IsAdmin() {
		return forbidden(c, msgAdminOnly)
	}

	var body servers.AdminUpdateUserJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	var add, remove []string
	if body.RolesToAdd != nil {
		add = *body.RolesToAdd
	}
	if body.RolesToRemove != nil {
		remove = *body.RolesToRemove
	}

	cmd, err := commands.NewAdminUpdateUserCommand(body.Username, add, remove)
	if err != nil {
		return badRequest(c, validationMessages(err)...)
	}

	result, err := s.h.AdminUpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.unexpected(c, err)
	}
	if result.Type == commands.AdminUpdateUserUserNotFound {
		return notFound(c, result.Errors...)
	}

	return c.NoContent(http.StatusOK)
}
