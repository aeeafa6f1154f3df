package orderrepo_test

import (
	"context"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/memory/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, repo *orderrepo.Repository) order.ID {
	t.Helper()

	id := repo.NextID()
	aggregate, err := order.NewOrder(id, kernel.NewUUID(),
		"12 Baker Street", "34 Elm Avenue", "groceries", "+15550001111")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), aggregate))
	return id
}

func TestRepository_NextID_Monotonic(t *testing.T) {
	repo := orderrepo.NewRepository()

	first := repo.NextID()
	second := repo.NextID()
	assert.Equal(t, order.ID(1), first)
	assert.Equal(t, order.ID(2), second)
}

func TestRepository_NextID_UniqueUnderConcurrency(t *testing.T) {
	repo := orderrepo.NewRepository()

	const n = 100
	ids := make(chan order.ID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[order.ID]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()
	id := newStoredOrder(t, repo)

	view, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "Pending", view.Status)
	assert.Equal(t, "12 Baker Street", view.PickupLocation)
}

func TestRepository_Add_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()
	id := newStoredOrder(t, repo)

	duplicate, err := order.NewOrder(id, kernel.NewUUID(),
		"56 Pine Road", "78 Oak Lane", "flowers", "+15550004444")
	require.NoError(t, err)

	err = repo.Add(ctx, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	_, err := repo.Get(ctx, order.ID(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetAll_CreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	first := newStoredOrder(t, repo)
	second := newStoredOrder(t, repo)
	third := newStoredOrder(t, repo)

	views, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, first, views[0].ID)
	assert.Equal(t, second, views[1].ID)
	assert.Equal(t, third, views[2].ID)
}

func TestRepository_GetAll_Empty(t *testing.T) {
	repo := orderrepo.NewRepository()

	views, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestRepository_Mutate_AppliesTransition(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()
	id := newStoredOrder(t, repo)
	riderID := kernel.NewUUID()

	view, err := repo.Mutate(ctx, id, func(o *order.Order) error {
		return o.Accept(riderID)
	})
	require.NoError(t, err)
	assert.Equal(t, "Accepted", view.Status)
	require.NotNil(t, view.RiderRef)
	assert.Equal(t, riderID.String(), *view.RiderRef)

	// the stored aggregate changed too
	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", stored.Status)
}

func TestRepository_Mutate_FailedTransitionLeavesOrderUntouched(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()
	id := newStoredOrder(t, repo)

	_, err := repo.Mutate(ctx, id, func(o *order.Order) error {
		return o.Complete() // pending orders cannot be finished
	})
	require.Error(t, err)

	view, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pending", view.Status)
}

func TestRepository_Mutate_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	_, err := repo.Mutate(ctx, order.ID(42), func(o *order.Order) error {
		return o.Cancel()
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Mutate_RacingAcceptsExactlyOneWins(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()
	id := newStoredOrder(t, repo)

	const riders = 50
	results := make(chan error, riders)
	var wg sync.WaitGroup
	for i := 0; i < riders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			riderID := kernel.NewUUID()
			_, err := repo.Mutate(ctx, id, func(o *order.Order) error {
				return o.Accept(riderID)
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, order.ErrAlreadyHandled)
		losses++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, riders-1, losses)

	view, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", view.Status)
	assert.NotNil(t, view.RiderRef)
}

func TestRepository_Mutate_IndependentOrdersDoNotInterfere(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	ids := make([]order.ID, 10)
	for i := range ids {
		ids[i] = newStoredOrder(t, repo)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Mutate(ctx, id, func(o *order.Order) error {
				return o.Accept(kernel.NewUUID())
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	views, err := repo.GetAll(ctx)
	require.NoError(t, err)
	for _, v := range views {
		assert.Equal(t, "Accepted", v.Status)
	}
}
