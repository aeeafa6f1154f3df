// Package userrepo implements the in-memory registered-identity store.
package userrepo

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

// Repository is the in-memory implementation of ports.UserRepository.
// Users are write-once, so a plain RWMutex over both indexes is enough.
type Repository struct {
	mu      sync.RWMutex
	byID    map[string]user.View
	byPhone map[string]user.View
}

// NewRepository creates an empty user store.
func NewRepository() *Repository {
	return &Repository{
		byID:    make(map[string]user.View),
		byPhone: make(map[string]user.View),
	}
}

// Add registers a new user. The phone number is the uniqueness key: a second
// registration under the same phone fails regardless of role.
func (r *Repository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	view := aggregate.View()
	if _, taken := r.byPhone[view.Phone]; taken {
		return errs.NewObjectAlreadyExistsError("phone", view.Phone)
	}

	r.byID[view.ID] = view
	r.byPhone[view.Phone] = view
	return nil
}

// Get returns the user registered under an id.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (user.View, error) {
	if err := id.Validate(); err != nil {
		return user.View{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	view, ok := r.byID[id.String()]
	if !ok {
		return user.View{}, errs.NewObjectNotFoundError("userId", id.String())
	}
	return view, nil
}

// GetByPhone returns the user registered under a phone number.
func (r *Repository) GetByPhone(_ context.Context, phone string) (user.View, error) {
	if phone == "" {
		return user.View{}, errs.NewValueIsRequiredError("phone")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	view, ok := r.byPhone[phone]
	if !ok {
		return user.View{}, errs.NewObjectNotFoundError("phone", phone)
	}
	return view, nil
}
