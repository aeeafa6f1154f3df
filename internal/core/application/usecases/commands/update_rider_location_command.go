package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateRiderLocationCommandIsNotConstructed = errors.New(
	"UpdateRiderLocationCommand must be created via NewUpdateRiderLocationCommand constructor",
)

// UpdateRiderLocationCommand represents a rider reporting their position
// while delivering an order.
type UpdateRiderLocationCommand struct {
	orderID order.ID
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateRiderLocationCommand creates a command to record a rider position.
// The coordinates must form a valid geographic point.
func NewUpdateRiderLocationCommand(orderID order.ID, lat, lng float64) (UpdateRiderLocationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateRiderLocationCommand{}, err
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return UpdateRiderLocationCommand{}, err
	}

	return UpdateRiderLocationCommand{
		orderID: orderID,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderLocationCommandIsNotConstructed)
}

// OrderID returns the order being tracked.
func (c UpdateRiderLocationCommand) OrderID() order.ID {
	return c.orderID
}

// Point returns the reported position.
func (c UpdateRiderLocationCommand) Point() kernel.GeoPoint {
	return c.point
}
