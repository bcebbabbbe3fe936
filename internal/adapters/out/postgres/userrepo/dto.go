// Package userrepo stores accounts, password hashes and role memberships.
package userrepo

import (
	"strings"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO keeps the username as registered. Uniqueness and lookups go
// through NormalizedUsername, so names differing only in case collide.
type UserDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"size:256;not null"`
	NormalizedUsername string    `gorm:"size:256;not null;uniqueIndex"`
	PasswordHash       string    `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type RoleDTO struct {
	Name string `gorm:"size:64;primaryKey"`
}

func (RoleDTO) TableName() string {
	return "roles"
}

// UserRoleDTO links a user to a role. Deleting the user drops its links.
type UserRoleDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleName string    `gorm:"size:64;primaryKey"`

	User *UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Role *RoleDTO `gorm:"foreignKey:RoleName;references:Name"`
}

func (UserRoleDTO) TableName() string {
	return "user_roles"
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return identity.NewUser(id, dto.Username)
}

func normalizeUsername(username string) string {
	return strings.ToUpper(username)
}
