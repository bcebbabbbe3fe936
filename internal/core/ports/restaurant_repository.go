package ports

import (
	"context"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"
)

type RestaurantRepository interface {
	// Add inserts the restaurant and its manager links.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get returns *errs.ObjectNotFoundError when no restaurant has the id.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

// ManagerDirectory answers which users manage a restaurant. Manager sets never
// change after creation, so implementations may cache them.
type ManagerDirectory interface {
	// RestaurantManagers returns the manager usernames, or
	// *errs.ObjectNotFoundError when the restaurant does not exist.
	RestaurantManagers(ctx context.Context, restaurantID kernel.UUID) ([]string, error)
}
