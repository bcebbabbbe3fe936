// Package restaurantrepo persists restaurants and the links to their managers.
package restaurantrepo

import (
	"time"

	"haul/internal/adapters/out/postgres/userrepo"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:256;not null"`
	CreatedAt time.Time `gorm:"not null"`

	Managers []ManagerDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ManagerDTO is one row of the restaurant/user join table. Position keeps the
// order in which managers were given at creation.
type ManagerDTO struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position     int       `gorm:"not null"`

	User *userrepo.UserDTO `gorm:"foreignKey:UserID"`
}

func (ManagerDTO) TableName() string {
	return "restaurant_managers"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	managers := make([]ManagerDTO, 0, len(r.Managers()))
	for i, m := range r.Managers() {
		managers = append(managers, ManagerDTO{
			RestaurantID: r.ID().Value(),
			UserID:       m.UserID().Value(),
			Position:     i,
		})
	}

	return RestaurantDTO{
		ID:        r.ID().Value(),
		Name:      r.Name(),
		CreatedAt: r.CreatedAt(),
		Managers:  managers,
	}
}

// toDomain expects Managers and Managers.User to be preloaded.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	managers := make([]restaurant.Manager, 0, len(dto.Managers))
	for _, m := range dto.Managers {
		userID, idErr := kernel.UUIDFromBytes(m.UserID[:])
		if idErr != nil {
			return nil, idErr
		}
		username := ""
		if m.User != nil {
			username = m.User.Username
		}
		manager, mErr := restaurant.NewManager(userID, username)
		if mErr != nil {
			return nil, mErr
		}
		managers = append(managers, manager)
	}

	return restaurant.NewRestaurant(id, dto.Name, managers, dto.CreatedAt)
}
