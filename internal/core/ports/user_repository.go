package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
)

// UserRepository is the contract of the registered-identity store.
// Users are write-once; there is no update or delete.
type UserRepository interface {
	// Add registers a new user. Fails with an ObjectAlreadyExistsError if the
	// phone number is taken, regardless of role.
	Add(ctx context.Context, aggregate *user.User) error

	// Get returns a snapshot of one user.
	// Fails with an ObjectNotFoundError if no user has that id.
	Get(ctx context.Context, id kernel.UUID) (user.View, error)

	// GetByPhone returns a snapshot of the user registered under a phone
	// number. Fails with an ObjectNotFoundError if none is.
	GetByPhone(ctx context.Context, phone string) (user.View, error)
}
