// Package guard provides ConstructorGuard, a zero-size marker that lets value
// objects detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into value objects and aggregates whose zero
// value is meaningless, e.g. a geographic point at (0,0) that nobody reported.
// Constructors set the guard; Validate on a zero value fails.
//
// Example:
//
//	type Location struct {
//	    lat, lng float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (l Location) Validate() error {
//	    return l.guard.Validate(ErrLocationIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
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
