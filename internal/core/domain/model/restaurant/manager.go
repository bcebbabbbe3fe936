package restaurant

import (
	"errors"
	"strings"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

var ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager constructor")

// Manager is a user granted elevated rights over a restaurant's orders.
type Manager struct {
	userID   kernel.UUID
	username string

	isConstructed bool
}

func NewManager(userID kernel.UUID, username string) (Manager, error) {
	if err := userID.Validate(); err != nil {
		return Manager{}, err
	}
	if strings.TrimSpace(username) == "" {
		return Manager{}, errs.NewValueIsRequiredError("manager username")
	}
	return Manager{userID: userID, username: username, isConstructed: true}, nil
}

func (m Manager) Validate() error {
	if !m.isConstructed {
		return ErrManagerIsNotConstructed
	}
	return nil
}

func (m Manager) UserID() kernel.UUID {
	return m.userID
}

func (m Manager) Username() string {
	return m.username
}
