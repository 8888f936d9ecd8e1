package kernel

import (
	"fmt"

	"docdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of
// the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, UUIDFromBytes, or DerivedUUID")

// UUID is a value object that represents a universally unique identifier.
// It wraps github.com/google/uuid to provide domain-specific behavior and ensure
// immutability. UUID is used as the identifier for every entity and aggregate
// in the marketplace core.
//
// The zero value of UUID is invalid and must be constructed using one of the
// provided factory functions: NewUUID, UUIDFromString, UUIDFromBytes, or DerivedUUID.
//
// UUID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Create a new random UUID
//	id := kernel.NewUUID()
//
//	// Create from string representation
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to create new identifiers for entities.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the standard formats understood by github.com/google/uuid.
// Returns an error if the string is not a valid UUID.
//
// This function is typically used when reconstructing entities from persistence
// or when parsing identifiers received from external systems.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// This function is useful when UUIDs are stored as binary data in databases.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// DerivedUUID deterministically derives a UUID (version 5) from a base UUID and a name.
// The same (base, name) pair always yields the same UUID.
//
// This is the mechanism behind idempotent order materialization: the order created
// for an invoice gets DerivedUUID(invoiceID, "order"), so a retried payment
// confirmation re-derives the identical order identifier instead of minting a new one.
//
// Example:
//
//	orderID := kernel.DerivedUUID(invoiceID, "order")
func DerivedUUID(base UUID, name string) UUID {
	return UUID{
		id: uuid.NewSHA1(base.id, []byte(name)),
	}
}

// String returns the standard string representation of the UUID
// in the form "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value.
// Note: for a byte slice representation use id.Bytes()[:].
// Direct access should be minimized to maintain encapsulation; it exists for
// persistence adapters and external library integration.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is the zero value (nil UUID).
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
