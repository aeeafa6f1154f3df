package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(order.ID(1), riderID)
	require.NoError(t, err)
	assert.Equal(t, order.ID(1), cmd.OrderID())
	assert.Equal(t, riderID, cmd.RiderID())
}

func TestNewAcceptOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(order.ID(0), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAcceptOrderCommand_InvalidRiderID(t *testing.T) {
	_, err := commands.NewAcceptOrderCommand(order.ID(1), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAcceptOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AcceptOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
