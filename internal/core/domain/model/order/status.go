package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the delivery
// workflow.
//
// State transitions:
//
//	Pending ──accept──> Accepted ──finish──> Completed
//	   │                    │
//	   └──────cancel────────┴──cancel──> Cancelled
//
// Cancelled and Completed are terminal: no transition leaves them.
// The transition methods are pure: they return the next status without
// mutating anything; the order store alone applies their output.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order,
	// waiting for a rider to accept it.
	Pending

	// Accepted indicates a rider has taken the order and is delivering it.
	Accepted

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled

	// Completed indicates the order was delivered. Terminal.
	Completed
)

// Transition rejection reasons. Each carries the exact message surfaced to
// API callers.
var (
	// ErrAlreadyHandled rejects accepting an order another rider already took.
	ErrAlreadyHandled = errors.New("Order already accepted or completed.")

	// ErrTerminalState rejects any action on a cancelled or completed order.
	ErrTerminalState = errors.New("cancelled or completed orders cannot be changed")

	// ErrNotAcceptedYet rejects finishing an order no rider has accepted.
	ErrNotAcceptedYet = errors.New("Only accepted orders can be finished.")

	// ErrNotTrackable rejects rider location updates outside active delivery.
	ErrNotTrackable = errors.New("rider location can only be updated while the order is accepted")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Cancelled: "Cancelled",
		Completed: "Completed",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Cancelled, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, valid or not.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition is defined out of this status.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// Accept transitions the status to Accepted.
//
// Valid only from Pending. An already-Accepted order reports
// ErrAlreadyHandled; terminal states report ErrTerminalState.
func (s Status) Accept() (Status, error) {
	switch s {
	case Pending:
		return Accepted, nil
	case Accepted:
		return Unknown, ErrAlreadyHandled
	case Cancelled, Completed:
		return Unknown, ErrTerminalState
	default:
		return Unknown, s.Validate()
	}
}

// Cancel transitions the status to Cancelled.
//
// Valid from Pending and Accepted. Cancelling a terminal order, even one
// already cancelled, reports ErrTerminalState rather than succeeding as a
// no-op.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Accepted:
		return Cancelled, nil
	case Cancelled, Completed:
		return Unknown, ErrTerminalState
	default:
		return Unknown, s.Validate()
	}
}

// Complete transitions the status to Completed.
//
// Valid only from Accepted. A Pending order reports ErrNotAcceptedYet;
// terminal states report ErrTerminalState.
func (s Status) Complete() (Status, error) {
	switch s {
	case Accepted:
		return Completed, nil
	case Pending:
		return Unknown, ErrNotAcceptedYet
	case Cancelled, Completed:
		return Unknown, ErrTerminalState
	default:
		return Unknown, s.Validate()
	}
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment: a rider reference must be present exactly when the order
// is Accepted or Completed.
func (s Status) ValidateCanHaveRider(rider bool) error {
	if rider && s != Accepted && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()))
	}

	if !rider && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()))
	}

	return nil
}
