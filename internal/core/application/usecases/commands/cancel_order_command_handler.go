package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CancelOrderCommandHandler withdraws orders that have not reached a
// terminal state.
type CancelOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle applies the cancel transition atomically and publishes orderUpdated
// on success. A rejected transition leaves the order untouched.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.View, error) {
	if err := cmd.Validate(); err != nil {
		return order.View{}, err
	}

	view, err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
	if err != nil {
		return order.View{}, err
	}

	h.publisher.Publish(ports.Event{Name: ports.EventOrderUpdated, Data: view})

	return view, nil
}
