package userrepo

import (
	"context"
	"errors"
	"fmt"

	"haul/internal/adapters/out/postgres/pgerr"
	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormIdentityStore implements ports.IdentityStore. Passwords are kept as
// bcrypt hashes.
type GormIdentityStore struct {
	db   *gorm.DB
	cost int
}

func NewGormIdentityStore(db *gorm.DB) *GormIdentityStore {
	return &GormIdentityStore{
		db:   db,
		cost: bcrypt.DefaultCost,
	}
}

func (s *GormIdentityStore) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var dto UserDTO
	if err := s.db.WithContext(ctx).First(&dto, "normalized_username = ?", normalizeUsername(username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (s *GormIdentityStore) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*identity.User, error) {
	if len(ids) == 0 {
		return []*identity.User{}, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var dtos []UserDTO
	if err := s.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *GormIdentityStore) Create(ctx context.Context, user *identity.User, password string) error {
	if err := user.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	dto := UserDTO{
		ID:                 user.ID().Value(),
		Username:           user.Username(),
		NormalizedUsername: normalizeUsername(user.Username()),
		PasswordHash:       string(hash),
	}
	if err = s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", identity.ErrUsernameTaken, user.Username())
		}
		return err
	}
	return nil
}

func (s *GormIdentityStore) CheckPassword(ctx context.Context, user *identity.User, password string) (bool, error) {
	var dto UserDTO
	if err := s.db.WithContext(ctx).Select("password_hash").First(&dto, "id = ?", user.ID().Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NewObjectNotFoundError("user", user.ID().String())
		}
		return false, err
	}

	err := bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func (s *GormIdentityStore) GetRoles(ctx context.Context, user *identity.User) ([]string, error) {
	roles := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&UserRoleDTO{}).
		Where("user_id = ?", user.ID().Value()).
		Order("role_name").
		Pluck("role_name", &roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// AddToRole is a no-op when the user already holds the role.
func (s *GormIdentityStore) AddToRole(ctx context.Context, user *identity.User, role string) error {
	link := UserRoleDTO{UserID: user.ID().Value(), RoleName: role}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewReferenceNotFoundErrorWithCause("role", role, err)
		}
		return err
	}
	return nil
}

func (s *GormIdentityStore) RemoveFromRole(ctx context.Context, user *identity.User, role string) error {
	return s.db.WithContext(ctx).
		Delete(&UserRoleDTO{}, "user_id = ? AND role_name = ?", user.ID().Value(), role).Error
}

func (s *GormIdentityStore) RoleExists(ctx context.Context, role string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&RoleDTO{}).Where("name = ?", role).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *GormIdentityStore) CreateRole(ctx context.Context, role string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&RoleDTO{Name: role}).Error
}
