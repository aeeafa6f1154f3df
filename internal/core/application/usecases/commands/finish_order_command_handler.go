package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// FinishOrderCommandHandler completes orders in active delivery.
type FinishOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewFinishOrderCommandHandler creates a handler for order completion.
func NewFinishOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle applies the finish transition atomically and publishes orderUpdated
// on success.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (order.View, error) {
	if err := cmd.Validate(); err != nil {
		return order.View{}, err
	}

	view, err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.Complete()
	})
	if err != nil {
		return order.View{}, err
	}

	h.publisher.Publish(ports.Event{Name: ports.EventOrderUpdated, Data: view})

	return view, nil
}
