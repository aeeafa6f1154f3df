package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// PlaceOrderCommandHandler creates orders in the authoritative store and
// announces them on the event bus.
type PlaceOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle assigns the next order id, stores the new Pending order, and
// publishes orderCreated with its snapshot.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.View, error) {
	if err := cmd.Validate(); err != nil {
		return order.View{}, err
	}

	aggregate, err := order.NewOrder(
		h.orders.NextID(),
		cmd.CustomerID(),
		cmd.PickupLocation(),
		cmd.DropoffLocation(),
		cmd.ItemDescription(),
		cmd.ContactNumber(),
	)
	if err != nil {
		return order.View{}, err
	}

	// Snapshot before Add: once the store holds the aggregate its id is
	// discoverable, and another request may already be mutating it under
	// the store's entry lock.
	view := aggregate.View()

	if err = h.orders.Add(ctx, aggregate); err != nil {
		return order.View{}, err
	}

	h.publisher.Publish(ports.Event{Name: ports.EventOrderCreated, Data: view})

	return view, nil
}
