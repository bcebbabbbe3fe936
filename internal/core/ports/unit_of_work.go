package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command, so concurrent commands
// never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Repositories obtained after Begin
// run inside it; domain events of tracked orders are written on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	RestaurantRepository() RestaurantRepository
	IdentityStore() IdentityStore
	OrderEventRepository() OrderEventRepository
}
