package kernel

import (
	"fmt"

	"orderlifecycle/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of the constructor functions.
// Validate returns it for the zero value, which is also what an unset struct field holds.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object identifying orders, audit entries, and delivery mappings.
// It wraps github.com/google/uuid so the domain never handles the library type directly.
//
// The zero value is invalid. Build identifiers with NewUUID for new aggregates,
// UUIDFromString for ids arriving over HTTP, and UUIDFromBytes for ids read back
// from uuid columns.
//
// UUID is an immutable value and is safe to copy and share between goroutines.
//
// Example usage:
//
//	// a new order gets a fresh identifier
//	orderID := kernel.NewUUID()
//
//	// an order id taken from the request path
//	parsed, err := kernel.UUIDFromString(c.Param("orderId"))
//	if err != nil {
//	    return err // ValueIsInvalidError, answered with 400
//	}
//
//	// identifiers compare by value
//	if parsed.IsEqual(orderID) {
//	    // same order
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
// The result always passes Validate.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, items, total, address, time.Now())
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of a UUID, as received in request paths.
// Every form accepted by uuid.Parse is allowed, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Malformed input yields a ValueIsInvalidError; the nil UUID
// "00000000-0000-0000-0000-000000000000" yields ErrUUIDIsNotConstructed.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from 16 raw bytes, as stored in uuid columns.
// Any other length is an error, and so are 16 zero bytes.
//
// Example:
//
//	var raw uuid.UUID
//	if err := rows.Scan(&raw); err != nil {
//	    return err
//	}
//	orderID, err := kernel.UUIDFromBytes(raw[:])
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

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// It is the form used in HTTP responses, log attributes and error messages.
//
// Example:
//
//	logger.InfoContext(ctx, "Order placed", "order_id", o.ID().String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence adapters.
// Despite the name it is the array type, not a slice; slice it with [:] when needed.
// Keep its use to adapters and query handlers.
//
// Example:
//
//	db.Where("order_id = ?", orderID.Bytes()).Find(&rows)
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
//
// Example:
//
//	a := kernel.NewUUID()
//	b := a
//	a.IsEqual(b)                // true
//	a.IsEqual(kernel.NewUUID()) // false
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
// Aggregates call it from their setters so an unset id never reaches storage.
//
// Example:
//
//	func (o *Order) setID(id kernel.UUID) error {
//	    if err := id.Validate(); err != nil {
//	        return err
//	    }
//	    o.id = id
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
