package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateRiderLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateRiderLocationCommand(order.ID(1), 48.8584, 2.2945)

	accepted := newPendingOrder(order.ID(1))
	require.NoError(t, accepted.Accept(kernel.NewUUID()))

	orders := &MockOrderRepository{aggregate: accepted}
	orders.On("Mutate", ctx, order.ID(1)).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.MatchedBy(func(e ports.Event) bool {
		update, ok := e.Data.(order.LocationUpdate)
		return e.Name == ports.EventRiderLocationUpdated && ok &&
			update.OrderID == order.ID(1) && update.Lat == 48.8584 && update.Lng == 2.2945
	})).Once()

	h := commands.NewUpdateRiderLocationCommandHandler(orders, publisher)
	view, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, view.RiderLocation)
	assert.InDelta(t, 48.8584, view.RiderLocation.Lat, 1e-9)
	assert.InDelta(t, 2.2945, view.RiderLocation.Lng, 1e-9)
	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateRiderLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.UpdateRiderLocationCommand{} // not constructed properly

	h := commands.NewUpdateRiderLocationCommandHandler(new(MockOrderRepository), new(MockEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestUpdateRiderLocationCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateRiderLocationCommand(order.ID(1), 48.8584, 2.2945)

	orders := &MockOrderRepository{aggregate: newPendingOrder(order.ID(1))}
	orders.On("Mutate", ctx, order.ID(1)).Return(nil).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewUpdateRiderLocationCommandHandler(orders, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrNotTrackable)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestUpdateRiderLocationCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateRiderLocationCommand(order.ID(1), 48.8584, 2.2945)

	completed := newPendingOrder(order.ID(1))
	require.NoError(t, completed.Accept(kernel.NewUUID()))
	require.NoError(t, completed.Complete())

	orders := &MockOrderRepository{aggregate: completed}
	orders.On("Mutate", ctx, order.ID(1)).Return(nil).Once()

	h := commands.NewUpdateRiderLocationCommandHandler(orders, new(MockEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrNotTrackable)
}
