package restaurantrepo

import (
	"context"
	"errors"

	"haul/internal/adapters/out/postgres/pgerr"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add inserts the restaurant together with its manager rows. A manager that
// no longer exists yields *errs.ReferenceNotFoundError.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewReferenceNotFoundErrorWithCause("managerIds", aggregate.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).
		Preload("Managers", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Managers.User").
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
