package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

const (
	MinDetailsLength = 1
	MaxDetailsLength = 2000
)

var (
	// ErrOrderIsNotConstructed is returned by Validate on an Order that did not
	// come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a customer order placed with a restaurant.
//
// Invariants:
//   - id and restaurantID are valid UUIDs
//   - details hold 1..2000 characters
//   - createdBy names the customer who placed the order
//   - status only changes along the transition table (see IsAllowed)
//   - every mutation replaces the version token; originalVersion keeps the
//     token the order was loaded with so that the write can be made
//     conditional on it
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	details      string
	status       Status

	createdAt     time.Time
	createdBy     string
	lastUpdatedAt time.Time

	version         kernel.UUID
	originalVersion kernel.UUID

	events []Event

	isConstructed bool
}

// NewOrder places a new order in status Created. Both timestamps are set to
// now and an OrderCreated event is recorded.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, "alice", "2x margherita", clock.Now())
//	if err != nil {
//	    return err
//	}
//	err = uow.OrderRepository().Add(ctx, o)
func NewOrder(id, restaurantID kernel.UUID, createdBy, details string, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     now,
		lastUpdatedAt: now,
		version:       kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCreatedBy(createdBy),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.raise(CreatedEvent{
		OrderID:      o.id,
		RestaurantID: o.restaurantID,
		CreatedBy:    o.createdBy,
		Details:      o.details,
		At:           now,
	})

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. The given version becomes
// the expected version of the next conditional write.
func RestoreOrder(
	id, restaurantID kernel.UUID,
	details string,
	status Status,
	createdAt time.Time,
	createdBy string,
	lastUpdatedAt time.Time,
	version kernel.UUID,
) (*Order, error) {
	o := &Order{
		createdAt:       createdAt,
		lastUpdatedAt:   lastUpdatedAt,
		version:         version,
		originalVersion: version,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCreatedBy(createdBy),
		o.setDetails(details),
		o.setStatus(status),
		version.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) Details() string {
	return o.details
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CreatedBy returns the username of the customer who placed the order.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

func (o *Order) LastUpdatedAt() time.Time {
	return o.lastUpdatedAt
}

// Version returns the token that will be stored with the next write.
func (o *Order) Version() kernel.UUID {
	return o.version
}

// OriginalVersion returns the token the order was loaded with. It is the zero
// UUID for an order that has never been stored.
func (o *Order) OriginalVersion() kernel.UUID {
	return o.originalVersion
}

// ChangeStatus moves the order to target, stamps lastUpdatedAt with now,
// replaces the version token and records an OrderStatusChanged event.
// Transitions missing from the table are rejected and leave the order
// untouched; callers that need a user facing message check IsAllowed first.
func (o *Order) ChangeStatus(target Status, changedBy string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !IsAllowed(o.status, target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be changed to %s", o.status, target),
		)
	}

	from := o.status
	o.status = target
	o.lastUpdatedAt = now
	o.version = kernel.NewUUID()

	o.raise(StatusChangedEvent{
		OrderID:   o.id,
		From:      from,
		To:        target,
		ChangedBy: changedBy,
		At:        now,
	})

	return nil
}

// DomainEvents returns the events recorded since the order was built or the
// events were last cleared.
func (o *Order) DomainEvents() []Event {
	return o.events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(e Event) {
	o.events = append(o.events, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCreatedBy(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("created by")
	}
	o.createdBy = username
	return nil
}

func (o *Order) setDetails(details string) error {
	n := utf8.RuneCountInString(details)
	if strings.TrimSpace(details) == "" || n < MinDetailsLength || n > MaxDetailsLength {
		return errs.NewValueIsOutOfRangeError("details length", n, MinDetailsLength, MaxDetailsLength)
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
