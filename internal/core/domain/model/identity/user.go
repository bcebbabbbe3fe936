package identity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

const (
	MinUsernameLength = 1
	MaxUsernameLength = 256
	MinPasswordLength = 6

	usernameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrUsernameTaken        = errors.New("username is already taken")
)

// User is an account of the identity store. Credentials stay inside the store.
type User struct {
	id       kernel.UUID
	username string

	isConstructed bool
}

func NewUser(id kernel.UUID, username string) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		ValidateUsername(username),
	); err != nil {
		return nil, err
	}
	u.username = username

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

// ValidateUsername accepts 1..256 characters of letters, digits and -._@+.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", n, MinUsernameLength, MaxUsernameLength)
	}
	for _, r := range username {
		if !strings.ContainsRune(usernameAlphabet, r) {
			return errs.NewValueIsInvalidErrorWithCause(
				"username",
				fmt.Errorf("character %q is not allowed", r),
			)
		}
	}
	return nil
}

func ValidatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters long", MinPasswordLength),
		)
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}
