// Package store defines the persistence interfaces for the application's
// entities, along with the sentinel errors shared by all implementations.
// The interfaces are implemented by the in-memory stores under
// internal/platform/memory.
package store
