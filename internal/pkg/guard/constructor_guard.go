// Package guard holds helpers that protect values from being used in their
// zero state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Commands,
// queries and value objects embed it so that a zero value fails Validate.
//
//	type GetOrderByIDQuery struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (q GetOrderByIDQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
