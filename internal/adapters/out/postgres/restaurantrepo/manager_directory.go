package restaurantrepo

import (
	"context"
	"database/sql"
	"errors"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormManagerDirectory answers manager lookups with one aggregate query.
type GormManagerDirectory struct {
	db *gorm.DB
}

func NewGormManagerDirectory(db *gorm.DB) *GormManagerDirectory {
	return &GormManagerDirectory{db: db}
}

// RestaurantManagers returns the usernames in creation order.
func (d *GormManagerDirectory) RestaurantManagers(ctx context.Context, restaurantID kernel.UUID) ([]string, error) {
	row := d.db.WithContext(ctx).Raw(`
		SELECT
			array_remove(array_agg(u.username ORDER BY rm.position), NULL)::text
		FROM restaurants r
		LEFT JOIN restaurant_managers rm ON rm.restaurant_id = r.id
		LEFT JOIN users u ON u.id = rm.user_id
		WHERE r.id = ?
		GROUP BY r.id
	`, restaurantID.Value()).Row()

	var managers pq.StringArray
	if err := row.Scan(&managers); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("restaurant", restaurantID.String())
		}
		return nil, err
	}

	return []string(managers), nil
}
