package commands_test

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock

	// aggregate is what Mutate hands to the transition closure. Tests that
	// expect Mutate to run the transition seed it before calling the handler.
	aggregate *order.Order
}

func (m *MockOrderRepository) NextID() order.ID {
	args := m.Called()
	return args.Get(0).(order.ID)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (order.View, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.View), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]order.View, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.View), args.Error(1)
}

func (m *MockOrderRepository) Mutate(ctx context.Context, id order.ID, fn func(*order.Order) error) (order.View, error) {
	args := m.Called(ctx, id)
	if err := args.Error(0); err != nil {
		return order.View{}, err
	}
	if err := fn(m.aggregate); err != nil {
		return order.View{}, err
	}
	return m.aggregate.View(), nil
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (user.View, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.View), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (user.View, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(user.View), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(event ports.Event) {
	m.Called(event)
}

func newPendingOrder(id order.ID) *order.Order {
	o, _ := order.NewOrder(id, kernel.NewUUID(),
		"12 Baker Street", "34 Elm Avenue", "groceries", "+15550001111")
	return o
}

func eventNamed(name ports.EventName) any {
	return mock.MatchedBy(func(e ports.Event) bool {
		return e.Name == name
	})
}
