package order

import (
	"fmt"
	"strings"

	"haul/internal/pkg/errs"
)

// Status is the stage of an order in the restaurant workflow.
//
// Allowed transitions:
//
//	Created ──> OrderAccepted ──> InProgress ──> WaitingDelivery ──> Delivering ──> Completed
//	   │              │               │                 │                 │
//	   └──────────────┴───────────────┴─────────────────┴─────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. No status may transition to itself.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Created
	OrderAccepted
	InProgress
	WaitingDelivery
	Delivering
	Completed
	Cancelled
)

// transitions is read-only after package initialization.
var transitions = map[Status][]Status{
	Created:         {Cancelled, OrderAccepted},
	OrderAccepted:   {Cancelled, InProgress},
	InProgress:      {Cancelled, WaitingDelivery},
	WaitingDelivery: {Cancelled, Delivering},
	Delivering:      {Cancelled, Completed},
	Completed:       {},
	Cancelled:       {},
}

var statusNames = map[Status]string{
	Created:         "Created",
	OrderAccepted:   "OrderAccepted",
	InProgress:      "InProgress",
	WaitingDelivery: "WaitingDelivery",
	Delivering:      "Delivering",
	Completed:       "Completed",
	Cancelled:       "Cancelled",
}

// Statuses lists every valid status in workflow order.
func Statuses() []Status {
	return []Status{Created, OrderAccepted, InProgress, WaitingDelivery, Delivering, Completed, Cancelled}
}

// IsAllowed reports whether an order in status from may move to status to.
// It has no side effects. A from value outside the table has no allowed
// transitions.
func IsAllowed(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseStatus converts a status name to a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the seven workflow statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used in messages, events and the API.
// Values outside the enum render as "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) CanTransitionTo(to Status) bool {
	return IsAllowed(s, to)
}

// AllowedTransitions returns a copy of the statuses reachable from s in one
// step.
func (s Status) AllowedTransitions() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}
