package kernel

import (
	"fmt"
	"strconv"

	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that represents a database-generated integer identifier.
// The zero value of ID is invalid and must be constructed using NewID.
//
// Identifiers in this system are assigned by the storage layer on first
// persistence, so an ID always refers to a record that exists or existed.
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	customerID, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a raw int64 value.
// The value must be positive; database sequences never produce zero or
// negative identifiers.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", value),
		)
	}
	return ID{value: value}, nil
}

// MustNewID creates an ID and panics when the value is invalid.
// Intended for tests and static wiring where the value is known to be valid.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the raw int64 identifier.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal string representation of the identifier.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed for a zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
