// Package order contains the Order aggregate and its lifecycle state machine.
// The aggregate is the only place order state can change; the in-memory store
// serializes access to each instance and everything else sees Views.
package order
