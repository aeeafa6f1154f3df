package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetOrderStatsQueryResponse holds order counts grouped by status name.
type GetOrderStatsQueryResponse struct {
	Total    int
	ByStatus map[string]int
}

// GetOrderStatsQueryHandler counts orders per lifecycle status.
type GetOrderStatsQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics.
func NewGetOrderStatsQueryHandler(orders ports.OrderRepository) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{orders: orders}
}

// Handle tallies a snapshot of the store. Counts from concurrent mutations
// may be off by the in-flight operations; that is fine for a stats log line.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	views, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{
		Total:    len(views),
		ByStatus: make(map[string]int),
	}
	for _, v := range views {
		resp.ByStatus[v.Status]++
	}

	return resp, nil
}
