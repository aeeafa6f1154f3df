package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// GetOrderQueryHandler serves single-order reads.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns a consistent snapshot of the order, or an
// ObjectNotFoundError if no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.View, error) {
	if err := query.Validate(); err != nil {
		return order.View{}, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
