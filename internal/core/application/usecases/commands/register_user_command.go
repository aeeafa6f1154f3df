package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a new customer or rider signing up.
type RegisterUserCommand struct {
	name  string
	phone string
	role  user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. Name and phone are
// required and the role must be "customer" or "rider".
func NewRegisterUserCommand(name, phone, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsedRole, roleErr := user.RoleFromString(role)

	if err := errors.Join(
		setRequiredString(&cmd.name, name, "name"),
		setRequiredString(&cmd.phone, phone, "phone"),
		roleErr,
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.role = parsedRole
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the phone number to register under.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}
