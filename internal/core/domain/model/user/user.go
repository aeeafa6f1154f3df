// Package user contains the registered identity model. Users are created at
// registration and never mutated or deleted; orders reference them by id
// without owning them.
package user

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role distinguishes the two client roles of the system.
type Role string

const (
	// RoleCustomer places orders.
	RoleCustomer Role = "customer"
	// RoleRider accepts and delivers orders.
	RoleRider Role = "rider"
)

// RoleFromString parses and validates a role supplied by a client.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the closed set.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleRider:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the role's wire representation.
func (r Role) String() string {
	return string(r)
}

// User is a registered customer or rider. The phone number is unique across
// both roles and serves as the login key.
type User struct {
	id    kernel.UUID
	name  string
	phone string
	role  Role

	isConstructed bool
}

// NewUser creates a validated user. Name and phone are required and the role
// must be one of the closed set.
func NewUser(id kernel.UUID, name, phone string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setPhone(phone),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was built via NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the unique phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsRider reports whether the user may accept orders.
func (u *User) IsRider() bool {
	return u.role == RoleRider
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
