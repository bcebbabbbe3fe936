package orderrepo

import (
	"context"
	"errors"

	"haul/internal/adapters/out/postgres/pgerr"
	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is told about every order written, so that its domain
// events can be stored on commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. The foreign key on restaurant_id is the only
// existence check for the restaurant.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewReferenceNotFoundErrorWithCause("restaurantId", aggregate.RestaurantID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns only while the stored version still
// equals the version the aggregate was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Value(), aggregate.OriginalVersion().Value()).
		Updates(map[string]any{
			"status":          int(aggregate.Status()),
			"last_updated_at": aggregate.LastUpdatedAt(),
			"version":         aggregate.Version().Value(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetWithManagers(ctx context.Context, id kernel.UUID) (*order.Order, []string, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	managers, err := restaurantrepo.NewGormManagerDirectory(r.db).RestaurantManagers(ctx, o.RestaurantID())
	if err != nil {
		return nil, nil, err
	}

	return o, managers, nil
}
