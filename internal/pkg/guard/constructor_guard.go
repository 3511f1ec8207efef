// Package guard provides a defensive construction pattern for commands, queries
// and other objects that must only be created through their constructor functions.
//
// Embedding a ConstructorGuard in a struct makes the zero value of that struct
// detectable: a guard obtained from NewConstructorGuard validates successfully,
// while a zero-value guard fails with the error supplied by the caller. This
// keeps invariants established in constructors from being bypassed by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so that validation of a zero-value object always fails
// with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    customerID kernel.ID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(customerID kernel.ID) (CreateOrderCommand, error) {
//	    // field validation ...
//	    return CreateOrderCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
// Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
