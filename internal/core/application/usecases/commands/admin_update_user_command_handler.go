package commands

import (
	"context"
	"errors"
	"slices"

	"haul/internal/pkg/errs"
)

// AdminUpdateUserCommandHandler adds the roles the user lacks and removes the
// ones it holds. Requests for roles already in the desired state are no-ops.
type AdminUpdateUserCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewAdminUpdateUserCommandHandler(uowFactory IdentityUoWFactory) AdminUpdateUserCommandHandler {
	return AdminUpdateUserCommandHandler{uowFactory: uowFactory}
}

func (h *AdminUpdateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AdminUpdateUserCommand,
) (AdminUpdateUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdminUpdateUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdminUpdateUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	store := uow.IdentityStore()
	user, err := store.FindByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AdminUpdateUserResult{
				Type:   AdminUpdateUserUserNotFound,
				Errors: []string{"User not found."},
			}, nil
		}
		return AdminUpdateUserResult{}, err
	}

	held, err := store.GetRoles(ctx, user)
	if err != nil {
		return AdminUpdateUserResult{}, err
	}

	for _, role := range cmd.RolesToAdd() {
		if slices.Contains(held, role) {
			continue
		}
		if err = ensureRole(ctx, store, role); err != nil {
			return AdminUpdateUserResult{}, err
		}
		if err = store.AddToRole(ctx, user, role); err != nil {
			return AdminUpdateUserResult{}, err
		}
	}

	for _, role := range cmd.RolesToRemove() {
		if !slices.Contains(held, role) {
			continue
		}
		if err = store.RemoveFromRole(ctx, user, role); err != nil {
			return AdminUpdateUserResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AdminUpdateUserResult{}, err
	}

	return AdminUpdateUserResult{Type: AdminUpdateUserSucceeded}, nil
}
