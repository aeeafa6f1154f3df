package userrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/memory/userrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, repo *userrepo.Repository, name, phone string, role user.Role) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	aggregate, err := user.NewUser(id, name, phone, role)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), aggregate))
	return id
}

func TestRepository_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()
	id := newStoredUser(t, repo, "Priya", "+15550003333", user.RoleCustomer)

	view, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id.String(), view.ID)
	assert.Equal(t, "Priya", view.Name)
	assert.Equal(t, "customer", view.Role)
}

func TestRepository_Add_PhoneTaken(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()
	newStoredUser(t, repo, "Priya", "+15550003333", user.RoleCustomer)

	// same phone, different role: still rejected
	rider, err := user.NewUser(kernel.NewUUID(), "Miguel", "+15550003333", user.RoleRider)
	require.NoError(t, err)

	err = repo.Add(ctx, rider)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetByPhone(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()
	newStoredUser(t, repo, "Miguel", "+15550002222", user.RoleRider)

	view, err := repo.GetByPhone(ctx, "+15550002222")
	require.NoError(t, err)
	assert.Equal(t, "Miguel", view.Name)
	assert.Equal(t, "rider", view.Role)
}

func TestRepository_GetByPhone_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()

	_, err := repo.GetByPhone(ctx, "+15550009999")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetByPhone_EmptyPhone(t *testing.T) {
	ctx := context.Background()
	repo := userrepo.NewRepository()

	_, err := repo.GetByPhone(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
