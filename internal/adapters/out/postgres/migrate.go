package postgres

import (
	"haul/internal/adapters/out/postgres/eventrepo"
	"haul/internal/adapters/out/postgres/orderrepo"
	"haul/internal/adapters/out/postgres/restaurantrepo"
	"haul/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.RoleDTO{},
		&userrepo.UserRoleDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ManagerDTO{},
		&orderrepo.OrderDTO{},
		&eventrepo.OrderEventDTO{},
	}
}

// Migrate creates or extends the schema, including foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Truncate empties every table. Used by integration tests between cases.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE order_events, orders, restaurant_managers, restaurants,
		user_roles, roles, users RESTART IDENTITY CASCADE`).Error
}
