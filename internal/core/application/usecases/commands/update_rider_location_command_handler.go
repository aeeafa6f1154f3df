package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UpdateRiderLocationCommandHandler records rider positions on orders in
// active delivery.
type UpdateRiderLocationCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewUpdateRiderLocationCommandHandler creates a handler for rider position
// reports.
func NewUpdateRiderLocationCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) UpdateRiderLocationCommandHandler {
	return UpdateRiderLocationCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle records the position atomically and publishes riderLocationUpdated.
// Orders outside active delivery reject the update.
func (h UpdateRiderLocationCommandHandler) Handle(ctx context.Context, cmd UpdateRiderLocationCommand) (order.View, error) {
	if err := cmd.Validate(); err != nil {
		return order.View{}, err
	}

	view, err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateRiderLocation(cmd.Point())
	})
	if err != nil {
		return order.View{}, err
	}

	h.publisher.Publish(ports.Event{
		Name: ports.EventRiderLocationUpdated,
		Data: order.LocationUpdate{
			OrderID: view.ID,
			Lat:     cmd.Point().Lat(),
			Lng:     cmd.Point().Lng(),
		},
	})

	return view, nil
}
