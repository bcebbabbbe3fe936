package commands

import (
	"context"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/restaurant"
	"haul/internal/core/ports"
)

const managersNotFoundMessage = "One or more managers were not found."

// CreateRestaurantCommandHandler resolves every manager id in a single lookup
// and stores the restaurant with its manager links. A manager id that is not a
// UUID, or that matches no user, fails the whole command with one message.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	clock      ports.Clock
}

func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	clock ports.Clock,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (CreateRestaurantResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRestaurantResult{}, err
	}

	ids := make([]kernel.UUID, 0, len(cmd.ManagerIDs()))
	for _, raw := range cmd.ManagerIDs() {
		id, err := kernel.UUIDFromString(raw)
		if err != nil || id.IsZero() {
			return managersNotFound(), nil
		}
		ids = append(ids, id)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateRestaurantResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users, err := uow.IdentityStore().FindByIDs(ctx, ids)
	if err != nil {
		return CreateRestaurantResult{}, err
	}

	managers, ok := managersInOrder(ids, users)
	if !ok {
		return managersNotFound(), nil
	}

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), cmd.Name(), managers, h.clock.Now())
	if err != nil {
		return CreateRestaurantResult{}, err
	}

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return CreateRestaurantResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateRestaurantResult{}, err
	}

	return CreateRestaurantResult{Type: CreateRestaurantSucceeded, RestaurantID: r.ID()}, nil
}

// managersInOrder pairs each requested id with its user. It reports false if
// any id is missing from users.
func managersInOrder(ids []kernel.UUID, users []*identity.User) ([]restaurant.Manager, bool) {
	byID := make(map[string]*identity.User, len(users))
	for _, u := range users {
		byID[u.ID().String()] = u
	}

	managers := make([]restaurant.Manager, 0, len(ids))
	for _, id := range ids {
		u, found := byID[id.String()]
		if !found {
			return nil, false
		}
		m, err := restaurant.NewManager(u.ID(), u.Username())
		if err != nil {
			return nil, false
		}
		managers = append(managers, m)
	}
	return managers, true
}

func managersNotFound() CreateRestaurantResult {
	return CreateRestaurantResult{
		Type:   CreateRestaurantManagersNotFound,
		Errors: []string{managersNotFoundMessage},
	}
}
