// Package orderrepo implements the authoritative in-memory order store.
//
// Every order lives in exactly one entry, guarded by its own mutex. The outer
// RWMutex only protects the id index and insertion list, so mutations of
// different orders never contend with each other, while two mutations of the
// same order are fully serialized. Callers only ever receive value snapshots;
// the aggregates themselves never leave the store.
package orderrepo

import (
	"context"
	"sync"
	"sync/atomic"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

type entry struct {
	mu        sync.Mutex
	aggregate *order.Order
}

// Repository is the in-memory implementation of ports.OrderRepository.
type Repository struct {
	mu      sync.RWMutex
	entries map[order.ID]*entry
	ordered []*entry // insertion order, for GetAll

	lastID atomic.Int64
}

// NewRepository creates an empty order store.
func NewRepository() *Repository {
	return &Repository{
		entries: make(map[order.ID]*entry),
	}
}

// NextID returns a fresh order identifier. Safe for concurrent use; ids are
// strictly increasing and never reused within the process lifetime.
func (r *Repository) NextID() order.ID {
	return order.ID(r.lastID.Add(1))
}

// Add stores a newly created order under its id.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, taken := r.entries[id]; taken {
		return errs.NewObjectAlreadyExistsError("orderId", id)
	}

	e := &entry{aggregate: aggregate}
	r.entries[id] = e
	r.ordered = append(r.ordered, e)
	return nil
}

// Get returns a consistent snapshot of one order.
func (r *Repository) Get(_ context.Context, id order.ID) (order.View, error) {
	e, err := r.lookup(id)
	if err != nil {
		return order.View{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.aggregate.View(), nil
}

// GetAll returns snapshots of every order in creation order. Each snapshot is
// individually consistent; the list as a whole is not a point-in-time view of
// the store, which is fine for a dashboard feed.
func (r *Repository) GetAll(_ context.Context) ([]order.View, error) {
	r.mu.RLock()
	ordered := make([]*entry, len(r.ordered))
	copy(ordered, r.ordered)
	r.mu.RUnlock()

	views := make([]order.View, 0, len(ordered))
	for _, e := range ordered {
		e.mu.Lock()
		views = append(views, e.aggregate.View())
		e.mu.Unlock()
	}

	return views, nil
}

// Mutate runs fn against the aggregate under the order's own lock and
// snapshots the result before releasing it. If fn fails the aggregate is
// left exactly as it was.
func (r *Repository) Mutate(_ context.Context, id order.ID, fn func(*order.Order) error) (order.View, error) {
	e, err := r.lookup(id)
	if err != nil {
		return order.View{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err = fn(e.aggregate); err != nil {
		return order.View{}, err
	}

	return e.aggregate.View(), nil
}

func (r *Repository) lookup(id order.ID) (*entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return e, nil
}
