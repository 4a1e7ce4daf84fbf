// Package guard provides the constructor guard pattern used by commands,
// queries, and domain objects to reject zero-value instances.
//
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was produced by its designated constructor or created as a zero
// value, keeping validation rules impossible to bypass.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation; only NewConstructorGuard produces a
// passing guard.
//
// Example:
//
//	type ShipOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewShipOrderCommand(orderID kernel.UUID) (ShipOrderCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return ShipOrderCommand{}, err
//	    }
//	    return ShipOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ShipOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
