// Package pgtest starts a throwaway PostgreSQL container with the service
// schema and seeds fixtures for integration tests.
package pgtest

import (
	"context"
	"time"

	pgadapter "haul/internal/adapters/out/postgres"
	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/adapters/out/postgres/userrepo"
	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const Password = "secret-password"

// Start runs postgres:15-alpine and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := pgadapter.OpenDSN(dsn, 10)
	if err != nil {
		return container, nil, err
	}

	if err = pgadapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// SeedUser stores a user whose password is Password.
func SeedUser(ctx context.Context, db *gorm.DB, username string) (*identity.User, error) {
	u, err := identity.NewUser(kernel.NewUUID(), username)
	if err != nil {
		return nil, err
	}
	if err = userrepo.NewGormIdentityStore(db).Create(ctx, u, Password); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedRestaurant stores a restaurant managed by the given users.
func SeedRestaurant(
	ctx context.Context,
	db *gorm.DB,
	name string,
	createdAt time.Time,
	managers ...*identity.User,
) (*restaurant.Restaurant, error) {
	ms := make([]restaurant.Manager, 0, len(managers))
	for _, u := range managers {
		m, err := restaurant.NewManager(u.ID(), u.Username())
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), name, ms, createdAt)
	if err != nil {
		return nil, err
	}
	if err = restaurantrepo.NewGormRestaurantRepository(db).Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
