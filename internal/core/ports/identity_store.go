package ports

import (
	"context"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
)

// IdentityStore keeps user accounts, their credentials and role memberships.
type IdentityStore interface {
	// FindByUsername returns *errs.ObjectNotFoundError for an unknown user.
	FindByUsername(ctx context.Context, username string) (*identity.User, error)

	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*identity.User, error)

	// Create stores the user with the given password. A taken username yields
	// an error matching identity.ErrUsernameTaken.
	Create(ctx context.Context, user *identity.User, password string) error

	CheckPassword(ctx context.Context, user *identity.User, password string) (bool, error)
	GetRoles(ctx context.Context, user *identity.User) ([]string, error)
	AddToRole(ctx context.Context, user *identity.User, role string) error
	RemoveFromRole(ctx context.Context, user *identity.User, role string) error
	RoleExists(ctx context.Context, role string) (bool, error)
	CreateRole(ctx context.Context, role string) error
}
