// Package guard provides the constructor-guard pattern used by domain objects
// to detect zero-value instances that bypassed their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific validation
// error is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable: the internal flag is only set by
// NewConstructorGuard, so any struct literal or zero value fails Validate.
//
// Example usage:
//
//	type Invoice struct {
//	    reference string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewInvoice(reference string) (Invoice, error) {
//	    if reference == "" {
//	        return Invoice{}, errors.New("reference is required")
//	    }
//	    return Invoice{reference: reference, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Invoice) Validate() error {
//	    return i.guard.Validate(ErrInvoiceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
