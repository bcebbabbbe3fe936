package queries

import (
	"context"

	"haul/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetMeQueryHandler struct {
	db *gorm.DB
}

func NewGetMeQueryHandler(db *gorm.DB) GetMeQueryHandler {
	return GetMeQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for a user that no longer exists,
// for example one deleted after the token was issued.
func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (MeView, error) {
	if err := query.Validate(); err != nil {
		return MeView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.username,
			coalesce(array_agg(ur.role_name ORDER BY ur.role_name) FILTER (WHERE ur.role_name IS NOT NULL), '{}')::text
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.username = ?
		GROUP BY u.id
	`, query.Username()).Rows()
	if err != nil {
		return MeView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return MeView{}, err
		}
		return MeView{}, errs.NewObjectNotFoundError("user", query.Username())
	}

	var me MeView
	var roles pq.StringArray
	if err = rows.Scan(&me.Username, &roles); err != nil {
		return MeView{}, err
	}
	me.Roles = []string(roles)

	return me, nil
}
