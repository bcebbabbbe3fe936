package commands

import (
	"context"
	"errors"
	"fmt"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"
)

// RegisterUserCommandHandler creates an account and puts it in the user role.
// The role is created on first use.
type RegisterUserCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory IdentityUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store := uow.IdentityStore()
	user, err := identity.NewUser(kernel.NewUUID(), cmd.Username())
	if err != nil {
		return RegisterUserResult{}, err
	}

	if err = store.Create(ctx, user, cmd.Password()); err != nil {
		if errors.Is(err, identity.ErrUsernameTaken) {
			return RegisterUserResult{
				Type:   RegisterUserFailed,
				Errors: []string{fmt.Sprintf("Username '%s' is already taken.", cmd.Username())},
			}, nil
		}
		return RegisterUserResult{}, err
	}

	if err = ensureRole(ctx, store, identity.RoleUser); err != nil {
		return RegisterUserResult{}, err
	}
	if err = store.AddToRole(ctx, user, identity.RoleUser); err != nil {
		return RegisterUserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterUserResult{}, err
	}

	return RegisterUserResult{Type: RegisterUserSucceeded, UserID: user.ID()}, nil
}

func ensureRole(ctx context.Context, store ports.IdentityStore, role string) error {
	exists, err := store.RoleExists(ctx, role)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return store.CreateRole(ctx, role)
}
