package commands_test

import (
	"context"
	"time"

	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/domain/model/restaurant"
	"haul/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetWithManagers(ctx context.Context, id kernel.UUID) (*order.Order, []string, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	managers, _ := args.Get(1).([]string)
	return o, managers, args.Error(2)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockIdentityStore struct{ mock.Mock }

func (m *MockIdentityStore) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}

func (m *MockIdentityStore) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*identity.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*identity.User)
	return users, args.Error(1)
}

func (m *MockIdentityStore) Create(ctx context.Context, u *identity.User, password string) error {
	return m.Called(ctx, u, password).Error(0)
}

func (m *MockIdentityStore) CheckPassword(ctx context.Context, u *identity.User, password string) (bool, error) {
	args := m.Called(ctx, u, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityStore) GetRoles(ctx context.Context, u *identity.User) ([]string, error) {
	args := m.Called(ctx, u)
	roles, _ := args.Get(0).([]string)
	return roles, args.Error(1)
}

func (m *MockIdentityStore) AddToRole(ctx context.Context, u *identity.User, role string) error {
	return m.Called(ctx, u, role).Error(0)
}

func (m *MockIdentityStore) RemoveFromRole(ctx context.Context, u *identity.User, role string) error {
	return m.Called(ctx, u, role).Error(0)
}

func (m *MockIdentityStore) RoleExists(ctx context.Context, role string) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityStore) CreateRole(ctx context.Context, role string) error {
	return m.Called(ctx, role).Error(0)
}

type MockOrderEventRepository struct{ mock.Mock }

func (m *MockOrderEventRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]ports.OutboxEvent)
	return events, args.Error(1)
}

func (m *MockOrderEventRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, e ports.OutboxEvent) error {
	return m.Called(ctx, e).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(username string, roles []string) (string, error) {
	args := m.Called(username, roles)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) IdentityStore() ports.IdentityStore {
	return m.Called().Get(0).(ports.IdentityStore)
}

func (m *MockUoW) OrderEventRepository() ports.OrderEventRepository {
	return m.Called().Get(0).(ports.OrderEventRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return m.Called().Get(0).(commands.RestaurantUoW)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	return m.Called().Get(0).(commands.IdentityUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}
