package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place a delivery order.
type PlaceOrderCommand struct {
	customerID      kernel.UUID
	pickupLocation  string
	dropoffLocation string
	itemDescription string
	contactNumber   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. All descriptive
// fields are required; the customer reference must be well-formed.
func NewPlaceOrderCommand(customerID kernel.UUID,
	pickupLocation, dropoffLocation, itemDescription, contactNumber string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		setRequiredString(&cmd.pickupLocation, pickupLocation, "pickupLocation"),
		setRequiredString(&cmd.dropoffLocation, dropoffLocation, "dropoffLocation"),
		setRequiredString(&cmd.itemDescription, itemDescription, "itemDescription"),
		setRequiredString(&cmd.contactNumber, contactNumber, "contactNumber"),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the placing customer's reference.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupLocation returns the pickup address.
func (c PlaceOrderCommand) PickupLocation() string {
	return c.pickupLocation
}

// DropoffLocation returns the dropoff address.
func (c PlaceOrderCommand) DropoffLocation() string {
	return c.dropoffLocation
}

// ItemDescription returns what is being delivered.
func (c PlaceOrderCommand) ItemDescription() string {
	return c.itemDescription
}

// ContactNumber returns the customer's contact number for this order.
func (c PlaceOrderCommand) ContactNumber() string {
	return c.contactNumber
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func setRequiredString(dst *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
