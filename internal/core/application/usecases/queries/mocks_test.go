package queries_test

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

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

func (m *MockOrderRepository) Mutate(
	ctx context.Context, id order.ID, _ func(*order.Order) error,
) (order.View, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.View), args.Error(1)
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
