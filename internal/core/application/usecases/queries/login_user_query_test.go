package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginUserQuery_ValidInput(t *testing.T) {
	query, err := queries.NewLoginUserQuery("+15550003333", "customer")
	require.NoError(t, err)
	assert.Equal(t, "+15550003333", query.Phone())
	assert.Equal(t, user.RoleCustomer, query.Role())
}

func TestNewLoginUserQuery_MissingPhone(t *testing.T) {
	_, err := queries.NewLoginUserQuery("", "rider")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewLoginUserQuery_UnknownRole(t *testing.T) {
	_, err := queries.NewLoginUserQuery("+15550003333", "dispatcher")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoginUserQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.LoginUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLoginUserQueryIsNotConstructed)
}
