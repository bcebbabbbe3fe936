// Package orderrepo maps order aggregates to the orders table and performs the
// version-checked writes that guard concurrent status changes.
package orderrepo

import (
	"time"

	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. Status is stored as its integer value.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Details       string    `gorm:"size:2000;not null"`
	Status        int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	CreatedBy     string    `gorm:"size:256;not null;index"`
	LastUpdatedAt time.Time `gorm:"not null"`
	Version       uuid.UUID `gorm:"type:uuid;not null"`

	Restaurant *restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Value(),
		RestaurantID:  o.RestaurantID().Value(),
		Details:       o.Details(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
		CreatedBy:     o.CreatedBy(),
		LastUpdatedAt: o.LastUpdatedAt(),
		Version:       o.Version().Value(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	version, err := kernel.UUIDFromBytes(dto.Version[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		dto.Details,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.CreatedBy,
		dto.LastUpdatedAt.UTC(),
		version,
	)
}
