package http_test

import (
	"context"
	"errors"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/domain/model/identity"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (commands.UpdateOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateOrderStatusResult), args.Error(1)
}

type MockCreateRestaurantHandler struct{ mock.Mock }

func (m *MockCreateRestaurantHandler) Handle(
	ctx context.Context,
	cmd commands.CreateRestaurantCommand,
) (commands.CreateRestaurantResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateRestaurantResult), args.Error(1)
}

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (commands.RegisterUserResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RegisterUserResult), args.Error(1)
}

type MockAuthenticateUserHandler struct{ mock.Mock }

func (m *MockAuthenticateUserHandler) Handle(
	ctx context.Context,
	cmd commands.AuthenticateUserCommand,
) (commands.AuthenticateUserResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AuthenticateUserResult), args.Error(1)
}

type MockAdminUpdateUserHandler struct{ mock.Mock }

func (m *MockAdminUpdateUserHandler) Handle(
	ctx context.Context,
	cmd commands.AdminUpdateUserCommand,
) (commands.AdminUpdateUserResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AdminUpdateUserResult), args.Error(1)
}

type MockGetOrderByIDHandler struct{ mock.Mock }

func (m *MockGetOrderByIDHandler) Handle(ctx context.Context, query queries.GetOrderByIDQuery) (queries.GetOrderByIDResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderByIDResult), args.Error(1)
}

type MockGetRestaurantByIDHandler struct{ mock.Mock }

func (m *MockGetRestaurantByIDHandler) Handle(
	ctx context.Context,
	query queries.GetRestaurantByIDQuery,
) (queries.GetRestaurantByIDResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRestaurantByIDResult), args.Error(1)
}

type MockGetRestaurantOrdersHandler struct{ mock.Mock }

func (m *MockGetRestaurantOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetRestaurantOrdersQuery,
) (queries.GetRestaurantOrdersResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRestaurantOrdersResult), args.Error(1)
}

type MockGetUserOrdersHandler struct{ mock.Mock }

func (m *MockGetUserOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetUserOrdersQuery,
) (queries.Page[queries.OrderView], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Page[queries.OrderView]), args.Error(1)
}

type MockGetMeHandler struct{ mock.Mock }

func (m *MockGetMeHandler) Handle(ctx context.Context, query queries.GetMeQuery) (queries.MeView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.MeView), args.Error(1)
}

// staticTokens accepts only the tokens it was built with.
type staticTokens map[string]identity.Principal

func (t staticTokens) Parse(raw string) (identity.Principal, error) {
	if p, ok := t[raw]; ok {
		return p, nil
	}
	return identity.Principal{}, errors.New("unknown token")
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}
