// Package ports declares the interfaces the core expects from the outside
// world: storage, identity, messaging, tokens and time.
package ports

import (
	"context"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add inserts a new order. A restaurant id that does not exist at write
	// time yields *errs.ReferenceNotFoundError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, lastUpdatedAt and version only if the stored
	// version still equals aggregate.OriginalVersion(). Otherwise it returns
	// *errs.VersionIsInvalidError and writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns *errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetWithManagers loads the order together with the usernames of its
	// restaurant's managers in one read.
	GetWithManagers(ctx context.Context, id kernel.UUID) (*order.Order, []string, error)
}
