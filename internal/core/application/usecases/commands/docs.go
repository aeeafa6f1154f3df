// Package commands contains the write operations of the system. Each command
// is a constructor-validated value object paired with a handler; handlers are
// the only code path from the gateway to order mutation, so together with the
// store's per-order locking they guarantee at most one transition commits on
// an order at a time.
//
// Handlers publish lifecycle events after the exclusive section of a
// successful mutation and never from a failed one.
package commands
