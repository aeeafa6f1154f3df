// Package kernel contains the shared value objects of the domain model:
// identifiers and geographic coordinates. Value objects are immutable and
// must be created through their constructor functions.
package kernel
