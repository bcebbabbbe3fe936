package queries

import (
	"context"
	"fmt"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetRestaurantByIDQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetRestaurantByIDQueryHandler(db *gorm.DB) GetRestaurantByIDQueryHandler {
	return GetRestaurantByIDQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle returns the full view to admins and managers of the restaurant and a
// redacted one to everybody else.
func (h GetRestaurantByIDQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantByIDQuery,
) (GetRestaurantByIDResult, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantByIDResult{}, err
	}

	notFound := GetRestaurantByIDResult{
		Type:   GetRestaurantByIDRestaurantNotFound,
		Errors: []string{fmt.Sprintf("Restaurant with ID '%s' not found.", query.RestaurantID())},
	}

	id, err := kernel.UUIDFromString(query.RestaurantID())
	if err != nil || id.IsZero() {
		return notFound, nil
	}

	view, found, err := loadRestaurantView(ctx, h.db, id)
	if err != nil {
		return GetRestaurantByIDResult{}, err
	}
	if !found {
		return notFound, nil
	}

	if !h.policy.CanViewRestaurantDetails(query.Requester(), view) {
		view = RedactRestaurantDetails(view)
	}

	return GetRestaurantByIDResult{Type: GetRestaurantByIDSucceeded, Restaurant: view}, nil
}

func loadRestaurantView(ctx context.Context, db *gorm.DB, id kernel.UUID) (RestaurantView, bool, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.created_at,
			coalesce(array_agg(u.id::text ORDER BY rm.position) FILTER (WHERE u.id IS NOT NULL), '{}')::text,
			coalesce(array_agg(u.username ORDER BY rm.position) FILTER (WHERE u.id IS NOT NULL), '{}')::text
		FROM restaurants r
		LEFT JOIN restaurant_managers rm ON rm.restaurant_id = r.id
		LEFT JOIN users u ON u.id = rm.user_id
		WHERE r.id = ?
		GROUP BY r.id
	`, id.Value()).Rows()
	if err != nil {
		return RestaurantView{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return RestaurantView{}, false, rows.Err()
	}

	var view RestaurantView
	var rawID uuid.UUID
	var managerIDs, usernames pq.StringArray
	var createdAt time.Time
	if err = rows.Scan(&rawID, &view.Name, &createdAt, &managerIDs, &usernames); err != nil {
		return RestaurantView{}, false, err
	}

	view.ID = id
	utc := createdAt.UTC()
	view.CreatedAt = &utc
	view.Managers = make([]ManagerView, 0, len(managerIDs))
	for i, raw := range managerIDs {
		userID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return RestaurantView{}, false, parseErr
		}
		view.Managers = append(view.Managers, ManagerView{UserID: userID, Username: usernames[i]})
	}

	return view, true, nil
}
