// Package http exposes the use cases over a JSON REST API served by echo.
// Routes and request binding come from the generated servers package; this
// package maps results to status codes and bodies.
package http

import (
	"context"
	"log/slog"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/services"
	"haul/internal/generated/servers"
)

// Use case views the server depends on. The command and query handlers
// satisfy them through their pointer receivers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (commands.UpdateOrderStatusResult, error)
	}
	CreateRestaurantHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) (commands.CreateRestaurantResult, error)
	}
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (commands.RegisterUserResult, error)
	}
	AuthenticateUserHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (commands.AuthenticateUserResult, error)
	}
	AdminUpdateUserHandler interface {
		Handle(ctx context.Context, cmd commands.AdminUpdateUserCommand) (commands.AdminUpdateUserResult, error)
	}
	GetOrderByIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrderByIDQuery) (queries.GetOrderByIDResult, error)
	}
	GetRestaurantByIDHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantByIDQuery) (queries.GetRestaurantByIDResult, error)
	}
	GetRestaurantOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) (queries.GetRestaurantOrdersResult, error)
	}
	GetUserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) (queries.Page[queries.OrderView], error)
	}
	GetMeHandler interface {
		Handle(ctx context.Context, query queries.GetMeQuery) (queries.MeView, error)
	}

	// TokenParser turns a bearer token into the caller it names.
	TokenParser interface {
		Parse(raw string) (identity.Principal, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	UpdateOrderStatus   UpdateOrderStatusHandler
	CreateRestaurant    CreateRestaurantHandler
	RegisterUser        RegisterUserHandler
	AuthenticateUser    AuthenticateUserHandler
	AdminUpdateUser     AdminUpdateUserHandler
	GetOrderByID        GetOrderByIDHandler
	GetRestaurantByID   GetRestaurantByIDHandler
	GetRestaurantOrders GetRestaurantOrdersHandler
	GetUserOrders       GetUserOrdersHandler
	GetMe               GetMeHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	h      Handlers
	policy services.AccessPolicy
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		policy: services.NewAccessPolicy(),
		logger: logger.With("component", "http_server"),
	}
}
