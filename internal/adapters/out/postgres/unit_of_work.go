// Package postgres implements the unit of work and schema management on top
// of GORM. Repositories handed out by a unit of work share its transaction.
//
// Orders written through a unit of work are tracked. On Commit their pending
// domain events are inserted into order_events inside the same transaction,
// so an order change and its event are stored together or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A UnitOfWork is not safe for concurrent use; create one per operation.
package postgres

import (
	"context"

	"haul/internal/adapters/out/postgres/eventrepo"
	"haul/internal/adapters/out/postgres/orderrepo"
	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/adapters/out/postgres/userrepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete type, which also satisfies the narrower
// unit of work views of the command handlers.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit stores the pending events of tracked orders and commits. If storing
// the events fails the transaction stays open for Rollback.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	orders := uow.trackedOrders()
	events := make([]order.Event, 0)
	for _, o := range orders {
		events = append(events, o.DomainEvents()...)
	}

	if err := eventrepo.NewGormOrderEventRepository(uow.tx).Append(ctx, events); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil {
		return err
	}

	for _, o := range orders {
		o.ClearDomainEvents()
	}
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

func (uow *GormUnitOfWork) IdentityStore() ports.IdentityStore {
	return userrepo.NewGormIdentityStore(uow.conn())
}

func (uow *GormUnitOfWork) OrderEventRepository() ports.OrderEventRepository {
	return eventrepo.NewGormOrderEventRepository(uow.conn())
}

// TrackAggregate registers a written aggregate. Tracking the same id again
// replaces the earlier entry.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	for i := range uow.trackedAggregates {
		if uow.trackedAggregates[i].ID.IsEqual(id) {
			uow.trackedAggregates[i].Aggregate = aggregate
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) trackedOrders() []*order.Order {
	orders := make([]*order.Order, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if o, ok := t.Aggregate.(*order.Order); ok {
			orders = append(orders, o)
		}
	}
	return orders
}
