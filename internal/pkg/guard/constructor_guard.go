// Package guard provides a small helper that domain objects and commands embed
// to detect instances created by bypassing their constructor functions.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is supplied
// for an object that was not built through its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having passed through a constructor.
// The zero value is "not constructed"; only NewConstructorGuard produces a
// constructed guard, so any struct literal bypassing the factory fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the owning object was properly constructed.
// If it was not, the supplied error is returned, or ErrNotConstructed when
// the supplied error is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrNotConstructed
	}
	return err
}
