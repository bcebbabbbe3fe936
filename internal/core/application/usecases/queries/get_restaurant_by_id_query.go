package queries

import (
	"errors"
	"slices"
	"strings"
	"time"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrGetRestaurantByIDQueryIsNotConstructed = errors.New(
		"GetRestaurantByIDQuery must be created via NewGetRestaurantByIDQuery constructor",
	)
)

// GetRestaurantByIDQuery reads a restaurant as seen by requester. The
// requester may be anonymous.
type GetRestaurantByIDQuery struct {
	restaurantID string
	requester    identity.Principal

	guard guard.ConstructorGuard
}

func NewGetRestaurantByIDQuery(restaurantID string, requester identity.Principal) (GetRestaurantByIDQuery, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return GetRestaurantByIDQuery{}, errs.NewValueIsRequiredError("restaurantId")
	}
	return GetRestaurantByIDQuery{
		restaurantID: restaurantID,
		requester:    requester,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantByIDQueryIsNotConstructed)
}

func (q GetRestaurantByIDQuery) RestaurantID() string {
	return q.restaurantID
}

func (q GetRestaurantByIDQuery) Requester() identity.Principal {
	return q.requester
}

type ManagerView struct {
	UserID   kernel.UUID
	Username string
}

// RestaurantView is the read model of a restaurant. CreatedAt and Managers are
// empty when the viewer may not see them.
type RestaurantView struct {
	ID        kernel.UUID
	Name      string
	CreatedAt *time.Time
	Managers  []ManagerView
}

func (v RestaurantView) IsManagedBy(username string) bool {
	return slices.ContainsFunc(v.Managers, func(m ManagerView) bool {
		return m.Username == username
	})
}

// RedactRestaurantDetails keeps only the id and name.
func RedactRestaurantDetails(v RestaurantView) RestaurantView {
	return RestaurantView{ID: v.ID, Name: v.Name}
}

type GetRestaurantByIDResultType int

const (
	GetRestaurantByIDSucceeded GetRestaurantByIDResultType = iota + 1
	GetRestaurantByIDRestaurantNotFound
)

type GetRestaurantByIDResult struct {
	Type       GetRestaurantByIDResultType
	Restaurant RestaurantView
	Errors     []string
}
