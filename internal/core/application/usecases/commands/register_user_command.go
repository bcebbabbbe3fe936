package commands

import (
	"errors"

	"haul/internal/core/domain/model/identity"
	"haul/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(username, password string) (RegisterUserCommand, error) {
	if err := errors.Join(
		identity.ValidateUsername(username),
		identity.ValidatePassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Password() string {
	return c.password
}
