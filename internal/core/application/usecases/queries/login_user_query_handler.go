package queries

import (
	"context"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// LoginUserQueryHandler resolves login requests. There are no credentials in
// this system; login is the keyed lookup of an existing registration.
type LoginUserQueryHandler struct {
	users ports.UserRepository
}

// NewLoginUserQueryHandler creates a handler for login lookups.
func NewLoginUserQueryHandler(users ports.UserRepository) LoginUserQueryHandler {
	return LoginUserQueryHandler{users: users}
}

// Handle returns the user registered under the claimed phone number. A phone
// registered under a different role than claimed is reported as not found,
// since the (phone, role) pair identifies the account.
func (h LoginUserQueryHandler) Handle(ctx context.Context, query LoginUserQuery) (user.View, error) {
	if err := query.Validate(); err != nil {
		return user.View{}, err
	}

	found, err := h.users.GetByPhone(ctx, query.Phone())
	if err != nil {
		return user.View{}, err
	}

	if found.Role != query.Role().String() {
		return user.View{}, errs.NewObjectNotFoundError("phone", query.Phone())
	}

	return found, nil
}
