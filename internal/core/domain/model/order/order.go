package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory, ensuring every order passed validation.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ID is the order identifier, assigned monotonically by the order store at
// creation and immutable for the lifetime of the process.
type ID int64

// Validate checks that the ID was assigned by the store.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	return nil
}

// Order is the aggregate root for a delivery order. It owns the lifecycle
// from placement through acceptance to completion or cancellation.
//
// Invariants:
//   - the descriptive fields are non-empty and immutable after creation
//   - status transitions follow the Status state machine, nothing else
//   - the rider reference is set exactly once, at acceptance, and is present
//     exactly when the status is Accepted or Completed
//   - the rider location is mutable only while the status is Accepted
//
// Fields are private; all mutation goes through the validated methods below.
type Order struct {
	id              ID
	customerID      kernel.UUID
	pickupLocation  string
	dropoffLocation string
	itemDescription string
	contactNumber   string
	status          Status
	riderID         *kernel.UUID
	riderLocation   *kernel.GeoPoint

	isConstructed bool
}

// NewOrder creates a Pending order with no rider assigned. All descriptive
// fields are required; a missing one fails with a ValueIsRequiredError so the
// gateway can reject the placement with 400.
func NewOrder(id ID, customerID kernel.UUID,
	pickupLocation, dropoffLocation, itemDescription, contactNumber string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRequiredField(&o.pickupLocation, pickupLocation, "pickupLocation"),
		o.setRequiredField(&o.dropoffLocation, dropoffLocation, "dropoffLocation"),
		o.setRequiredField(&o.itemDescription, itemDescription, "itemDescription"),
		o.setRequiredField(&o.contactNumber, contactNumber, "contactNumber"),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built via NewOrder and that its status and
// rider assignment are consistent.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return o.status.ValidateCanHaveRider(o.riderID != nil)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() ID {
	return o.id
}

// CustomerID returns the placing customer's reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the accepting rider's reference, or nil before acceptance.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// RiderLocation returns the last reported rider position, or nil if none
// has been reported.
func (o *Order) RiderLocation() *kernel.GeoPoint {
	return o.riderLocation
}

// Accept assigns the order to a rider and moves it to Accepted.
// The caller is responsible for having resolved riderID to a registered
// rider; here it only has to be a well-formed reference.
func (o *Order) Accept(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// Cancel withdraws the order. A rider may only be referenced by Accepted and
// Completed orders, so cancelling an accepted order releases the assignment
// and any reported position along with it.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = nil
	o.riderLocation = nil
	return nil
}

// Complete marks the order as delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateRiderLocation records the rider's position. Only orders in active
// delivery (Accepted) are trackable.
func (o *Order) UpdateRiderLocation(point kernel.GeoPoint) error {
	if o.status != Accepted {
		return ErrNotTrackable
	}

	o.riderLocation = &point
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRequiredField(dst *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
