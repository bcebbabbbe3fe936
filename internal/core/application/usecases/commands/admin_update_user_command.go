package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"haul/internal/core/domain/model/identity"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrAdminUpdateUserCommandIsNotConstructed = errors.New(
		"AdminUpdateUserCommand must be created via NewAdminUpdateUserCommand constructor",
	)
)

// AdminUpdateUserCommand grants and revokes roles of an account. Both lists
// may only name known roles, each at most once, and a role cannot be added
// and removed at the same time.
type AdminUpdateUserCommand struct { //nolint:recvcheck //using for validation
	username      string
	rolesToAdd    []string
	rolesToRemove []string

	guard guard.ConstructorGuard
}

func NewAdminUpdateUserCommand(username string, rolesToAdd, rolesToRemove []string) (AdminUpdateUserCommand, error) {
	cmd := AdminUpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		validateRoleList("rolesToAdd", rolesToAdd),
		validateRoleList("rolesToRemove", rolesToRemove),
		validateDisjoint(rolesToAdd, rolesToRemove),
	); err != nil {
		return AdminUpdateUserCommand{}, err
	}

	cmd.rolesToAdd = slices.Clone(rolesToAdd)
	cmd.rolesToRemove = slices.Clone(rolesToRemove)
	return cmd, nil
}

func (c AdminUpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrAdminUpdateUserCommandIsNotConstructed)
}

func (c AdminUpdateUserCommand) Username() string {
	return c.username
}

func (c AdminUpdateUserCommand) RolesToAdd() []string {
	return slices.Clone(c.rolesToAdd)
}

func (c AdminUpdateUserCommand) RolesToRemove() []string {
	return slices.Clone(c.rolesToRemove)
}

func (c *AdminUpdateUserCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func validateRoleList(param string, roles []string) error {
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if !identity.IsKnownRole(role) {
			return errs.NewValueIsInvalidErrorWithCause(
				param,
				fmt.Errorf("unknown role %q, expected one of %s", role, strings.Join(identity.KnownRoles(), ", ")),
			)
		}
		if _, dup := seen[role]; dup {
			return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("role %q is listed twice", role))
		}
		seen[role] = struct{}{}
	}
	return nil
}

func validateDisjoint(add, remove []string) error {
	for _, role := range add {
		if slices.Contains(remove, role) {
			return errs.NewValueIsInvalidErrorWithCause(
				"roles",
				fmt.Errorf("role %q is both added and removed", role),
			)
		}
	}
	return nil
}
