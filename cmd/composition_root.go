package cmd

import (
	"log/slog"

	"haul/internal/adapters/in/http"
	"haul/internal/adapters/out/postgres"
	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/adapters/out/postgres/userrepo"
	"haul/internal/adapters/out/rabbitmq"
	redisadapter "haul/internal/adapters/out/redis"
	"haul/internal/adapters/out/tokens"
	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/application/usecases/queries"
	"haul/internal/core/ports"
	"haul/internal/jobs"
	"haul/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger
	tokens     *tokens.JWTService
	redis      *redis.Client
	managers   ports.ManagerDirectory
}

// NewCompositionRoot wires the adapters shared by every handler. redisClient
// may be nil, in which case manager lookups go straight to the database.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (*CompositionRoot, error) {
	clk := clock.NewSystem()

	jwt, err := tokens.NewJWTService(cfg.Tokens(), clk)
	if err != nil {
		return nil, err
	}

	var managers ports.ManagerDirectory = restaurantrepo.NewGormManagerDirectory(gormDB)
	if redisClient != nil {
		managers = redisadapter.NewCachedManagerDirectory(redisClient, managers, cfg.RedisManagerTTL, logger)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clk,
		logger:     logger,
		tokens:     jwt,
		redis:      redisClient,
		managers:   managers,
	}, nil
}

func (c *CompositionRoot) Tokens() *tokens.JWTService {
	return c.tokens
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(userrepo.NewGormIdentityStore(c.gormDB), c.tokens)
}

func (c *CompositionRoot) CreateAdminUpdateUserCommandHandler() commands.AdminUpdateUserCommandHandler {
	return commands.NewAdminUpdateUserCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreatePublishOrderEventsCommandHandler(publisher ports.EventPublisher) commands.PublishOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOrderEventsCommandHandler(f, publisher, c.clock)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB, c.managers)
}

func (c *CompositionRoot) CreateGetRestaurantByIDQueryHandler() queries.GetRestaurantByIDQueryHandler {
	return queries.NewGetRestaurantByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB, c.managers)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMeQueryHandler() queries.GetMeQueryHandler {
	return queries.NewGetMeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the API server over every use case handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrderStatus := c.CreateUpdateOrderStatusCommandHandler()
	createRestaurant := c.CreateCreateRestaurantCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()
	adminUpdateUser := c.CreateAdminUpdateUserCommandHandler()
	getOrderByID := c.CreateGetOrderByIDQueryHandler()
	getRestaurantByID := c.CreateGetRestaurantByIDQueryHandler()
	getRestaurantOrders := c.CreateGetRestaurantOrdersQueryHandler()
	getUserOrders := c.CreateGetUserOrdersQueryHandler()
	getMe := c.CreateGetMeQueryHandler()

	return http.NewServer(http.Handlers{
		CreateOrder:         &createOrder,
		UpdateOrderStatus:   &updateOrderStatus,
		CreateRestaurant:    &createRestaurant,
		RegisterUser:        &registerUser,
		AuthenticateUser:    &authenticateUser,
		AdminUpdateUser:     &adminUpdateUser,
		GetOrderByID:        &getOrderByID,
		GetRestaurantByID:   &getRestaurantByID,
		GetRestaurantOrders: &getRestaurantOrders,
		GetUserOrders:       &getUserOrders,
		GetMe:               &getMe,
	}, c.logger)
}

// CreateOutboxRelayJob publishes stored order events to RabbitMQ on the
// configured schedule.
func (c *CompositionRoot) CreateOutboxRelayJob(conn rabbitmq.Connection) (*jobs.OutboxRelayJob, error) {
	cmd, err := commands.NewPublishOrderEventsCommand(c.cfg.OutboxBatchSize)
	if err != nil {
		return nil, err
	}
	handler := c.CreatePublishOrderEventsCommandHandler(rabbitmq.NewEventPublisher(conn, c.cfg.RabbitExchange))
	return jobs.NewOutboxRelayJob(&handler, cmd, c.cfg.OutboxSchedule, c.logger), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
