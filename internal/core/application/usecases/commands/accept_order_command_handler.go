package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AcceptOrderResult carries the accepted order's snapshot together with the
// rider who won it, so the gateway can name the rider in its response.
type AcceptOrderResult struct {
	Order order.View
	Rider user.View
}

// AcceptOrderCommandHandler assigns pending orders to riders. The rider
// lookup happens before the order's exclusive section so the critical path
// only computes the transition; when two riders race for the same order,
// the store's per-order lock lets exactly one of them through.
type AcceptOrderCommandHandler struct {
	orders    ports.OrderRepository
	users     ports.UserRepository
	publisher ports.EventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	orders ports.OrderRepository,
	users ports.UserRepository,
	publisher ports.EventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		orders:    orders,
		users:     users,
		publisher: publisher,
	}
}

// Handle resolves the rider reference to a registered rider, applies the
// accept transition atomically, and publishes orderUpdated on success.
// An unknown id, or one registered to a customer, fails as not found.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (AcceptOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptOrderResult{}, err
	}

	rider, err := h.users.Get(ctx, cmd.RiderID())
	if err != nil {
		return AcceptOrderResult{}, err
	}
	if rider.Role != user.RoleRider.String() {
		return AcceptOrderResult{}, errs.NewObjectNotFoundError("riderId", cmd.RiderID().String())
	}

	view, err := h.orders.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.Accept(cmd.RiderID())
	})
	if err != nil {
		return AcceptOrderResult{}, err
	}

	h.publisher.Publish(ports.Event{Name: ports.EventOrderUpdated, Data: view})

	return AcceptOrderResult{Order: view, Rider: rider}, nil
}
