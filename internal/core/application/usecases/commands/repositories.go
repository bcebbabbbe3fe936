// Package commands contains the use cases that change state: placing orders,
// moving them through the workflow, opening restaurants, managing accounts and
// relaying order events.
//
// Every handler follows the same shape: validate the command, open a unit of
// work, load and mutate aggregates, commit. Expected business outcomes are
// returned as result values; the error return is kept for failures the caller
// cannot act on (storage down, cancelled context, exhausted retries).
package commands

import (
	"context"

	"haul/internal/core/ports"
)

// Unit of work views, narrowed to the repositories each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	IdentityStoreFactory interface {
		IdentityStore() ports.IdentityStore
	}

	OrderEventRepoFactory interface {
		OrderEventRepository() ports.OrderEventRepository
	}

	// OrderUoW is used by commands that write orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RestaurantUoW resolves managers and stores the restaurant in one
	// transaction.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		IdentityStoreFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	IdentityUoW interface {
		TxManager
		IdentityStoreFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// OutboxUoW locks a batch of stored events while they are relayed.
	OutboxUoW interface {
		TxManager
		OrderEventRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
