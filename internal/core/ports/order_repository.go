package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository is the contract of the authoritative order store. The store
// is the single owner of all Order aggregates: callers receive Views (value
// snapshots), never the aggregates themselves, and all mutation goes through
// Mutate under the store's per-order exclusion.
type OrderRepository interface {
	// NextID returns a fresh, monotonically increasing order identifier.
	NextID() order.ID

	// Add stores a newly created order aggregate under its id.
	// Fails if the id is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns a consistent snapshot of one order.
	// Fails with an ObjectNotFoundError if no order has that id.
	Get(ctx context.Context, id order.ID) (order.View, error)

	// GetAll returns consistent snapshots of all orders in creation order.
	GetAll(ctx context.Context) ([]order.View, error)

	// Mutate runs fn against the aggregate under the order's exclusive lock
	// and returns the post-mutation snapshot. Concurrent Mutate calls on the
	// same id are serialized; calls on different ids proceed independently.
	// If fn returns an error the aggregate is left untouched and the error is
	// passed through. fn must not block on I/O.
	Mutate(ctx context.Context, id order.ID, fn func(*order.Order) error) (order.View, error)
}
