package services

import (
	"slices"

	"haul/internal/core/domain/model/identity"
	"haul/internal/core/domain/model/order"
)

// ManagedRestaurant is anything that can tell whether a user manages it.
// *restaurant.Restaurant and the restaurant read models implement it.
type ManagedRestaurant interface {
	IsManagedBy(username string) bool
}

// AccessPolicy decides who may see and change orders and restaurants.
// Every method is a pure predicate over data the caller already fetched.
//
// Rules:
//   - an order is visible to its creator, to admins and to the restaurant's managers
//   - restaurant details (managers, creation time) are visible to admins and managers
//   - order status may be changed by admins and the restaurant's managers only;
//     the creator alone is not enough
//   - a restaurant's order list follows the same rule as changing an order
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

func (AccessPolicy) CanViewOrder(p identity.Principal, o *order.Order, restaurantManagers []string) bool {
	if p.IsAnonymous() || o == nil {
		return false
	}
	return o.CreatedBy() == p.Username ||
		p.IsAdmin() ||
		slices.Contains(restaurantManagers, p.Username)
}

// CanViewRestaurantDetails reports whether p sees the managers and creation
// time of r. Everyone else still sees the id and name.
func (AccessPolicy) CanViewRestaurantDetails(p identity.Principal, r ManagedRestaurant) bool {
	if p.IsAnonymous() || r == nil {
		return false
	}
	return p.IsAdmin() || r.IsManagedBy(p.Username)
}

func (AccessPolicy) CanMutateOrder(p identity.Principal, isAdmin bool, restaurantManagers []string) bool {
	if isAdmin {
		return true
	}
	return !p.IsAnonymous() && slices.Contains(restaurantManagers, p.Username)
}

func (a AccessPolicy) CanViewRestaurantOrders(p identity.Principal, isAdmin bool, restaurantManagers []string) bool {
	return a.CanMutateOrder(p, isAdmin, restaurantManagers)
}
