package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
)

// CreateRestaurantCommand opens a restaurant managed by existing users.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	name       string
	managerIDs []string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand requires a name of 1..256 characters and 1..10
// distinct, non-empty manager ids.
func NewCreateRestaurantCommand(name string, managerIDs []string) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setManagerIDs(managerIDs),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) ManagerIDs() []string {
	return append([]string(nil), c.managerIDs...)
}

func (c *CreateRestaurantCommand) setName(name string) error {
	n := utf8.RuneCountInString(name)
	if strings.TrimSpace(name) == "" || n > restaurant.MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, restaurant.MinNameLength, restaurant.MaxNameLength)
	}
	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setManagerIDs(ids []string) error {
	if len(ids) < restaurant.MinManagers || len(ids) > restaurant.MaxManagers {
		return errs.NewValueIsOutOfRangeError("managerIds count", len(ids), restaurant.MinManagers, restaurant.MaxManagers)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return errs.NewValueIsRequiredError("managerIds")
		}
		if _, ok := seen[managerKey(id)]; ok {
			return errs.NewValueIsInvalidErrorWithCause("managerIds", fmt.Errorf("%s is listed twice", id))
		}
		seen[managerKey(id)] = struct{}{}
	}

	c.managerIDs = append([]string(nil), ids...)
	return nil
}

// managerKey identifies a manager id regardless of the UUID notation used.
// Ids that are not UUIDs are kept and reported as unknown managers later.
func managerKey(id string) string {
	if parsed, err := kernel.UUIDFromString(id); err == nil {
		return parsed.String()
	}
	return strings.ToLower(id)
}
