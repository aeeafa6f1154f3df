// Package queries contains the read operations of the system. Queries never
// mutate state; they return value snapshots taken under the store's per-order
// locks, so a reader can never observe an order mid-transition.
package queries
