package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

const (
	MinNameLength = 1
	MaxNameLength = 256
	MinManagers   = 1
	MaxManagers   = 10
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root owning a set of managers. Managers are
// fixed at creation; orders reference the restaurant by id.
type Restaurant struct {
	id        kernel.UUID
	name      string
	createdAt time.Time
	managers  []Manager

	isConstructed bool
}

// NewRestaurant validates the name (1..256 characters) and the manager set
// (1..10 managers, no user listed twice).
func NewRestaurant(id kernel.UUID, name string, managers []Manager, createdAt time.Time) (*Restaurant, error) {
	r := &Restaurant{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setManagers(managers),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// Managers returns a copy of the manager set.
func (r *Restaurant) Managers() []Manager {
	out := make([]Manager, len(r.managers))
	copy(out, r.managers)
	return out
}

func (r *Restaurant) ManagerUsernames() []string {
	names := make([]string, 0, len(r.managers))
	for _, m := range r.managers {
		names = append(names, m.username)
	}
	return names
}

func (r *Restaurant) IsManagedBy(username string) bool {
	for _, m := range r.managers {
		if m.username == username {
			return true
		}
	}
	return false
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	n := utf8.RuneCountInString(name)
	if strings.TrimSpace(name) == "" || n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, MinNameLength, MaxNameLength)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setManagers(managers []Manager) error {
	if len(managers) < MinManagers || len(managers) > MaxManagers {
		return errs.NewValueIsOutOfRangeError("managers count", len(managers), MinManagers, MaxManagers)
	}

	seen := make(map[kernel.UUID]struct{}, len(managers))
	for _, m := range managers {
		if err := m.Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.userID]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"managers",
				fmt.Errorf("user %s is listed more than once", m.userID),
			)
		}
		seen[m.userID] = struct{}{}
	}

	r.managers = make([]Manager, len(managers))
	copy(r.managers, managers)
	return nil
}
