package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
)

// RegisterUserCommandHandler creates registered identities. Registration is
// an external collaborator to the order core: it publishes no events.
type RegisterUserCommandHandler struct {
	users ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(users ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		users: users,
	}
}

// Handle stores a new user under a fresh id. A phone number already
// registered under either role fails with an ObjectAlreadyExistsError.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (user.View, error) {
	if err := cmd.Validate(); err != nil {
		return user.View{}, err
	}

	aggregate, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Phone(), cmd.Role())
	if err != nil {
		return user.View{}, err
	}

	if err = h.users.Add(ctx, aggregate); err != nil {
		return user.View{}, err
	}

	return aggregate.View(), nil
}
