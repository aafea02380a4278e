// Package guard provides the ConstructorGuard defensive pattern used by application
// commands to ensure they are created through their constructor functions rather than
// as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is provided
// for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor. Embedding a guard and validating it before use prevents accidental
// zero-value construction from bypassing invariant checks.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was constructed through its constructor,
// otherwise the provided error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
