package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// GetAllOrdersQueryHandler serves the order list endpoint.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the full order list.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns snapshots of all orders in creation order. It never fails
// for an empty store; the result is simply empty.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]order.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetAll(ctx)
}
