package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand represents a rider marking a delivery as done.
type FinishOrderCommand struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to complete an order.
func NewFinishOrderCommand(orderID order.ID) (FinishOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinishOrderCommand{}, err
	}

	return FinishOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c FinishOrderCommand) OrderID() order.ID {
	return c.orderID
}
