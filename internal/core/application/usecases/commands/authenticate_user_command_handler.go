package commands

import (
	"context"
	"errors"

	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

const invalidCredentialsMessage = "Invalid username or password."

// AuthenticateUserCommandHandler checks credentials and issues a token with
// the user's current roles. It only reads, so it runs outside a unit of work.
type AuthenticateUserCommandHandler struct {
	store  ports.IdentityStore
	tokens ports.TokenIssuer
}

func NewAuthenticateUserCommandHandler(
	store ports.IdentityStore,
	tokens ports.TokenIssuer,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		store:  store,
		tokens: tokens,
	}
}

func (h *AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (AuthenticateUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthenticateUserResult{}, err
	}

	user, err := h.store.FindByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return invalidCredentials(), nil
		}
		return AuthenticateUserResult{}, err
	}

	ok, err := h.store.CheckPassword(ctx, user, cmd.Password())
	if err != nil {
		return AuthenticateUserResult{}, err
	}
	if !ok {
		return invalidCredentials(), nil
	}

	roles, err := h.store.GetRoles(ctx, user)
	if err != nil {
		return AuthenticateUserResult{}, err
	}

	token, err := h.tokens.Issue(user.Username(), roles)
	if err != nil {
		return AuthenticateUserResult{}, err
	}

	return AuthenticateUserResult{Type: AuthenticateUserSucceeded, Token: token}, nil
}

func invalidCredentials() AuthenticateUserResult {
	return AuthenticateUserResult{
		Type:   AuthenticateUserInvalidCredentials,
		Errors: []string{invalidCredentialsMessage},
	}
}
