// Package customer contains the Customer entity.
// Customers are referenced by orders and are never destroyed implicitly by
// order operations; deleting a customer that still has orders is rejected
// at the persistence boundary.
package customer

import (
	"errors"
	"fmt"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")
)

const (
	maxNameLength  = 50
	maxPhoneLength = 15
)

// Customer represents a person who places orders.
//
// Invariants:
//   - Name is non-empty and at most 50 characters
//   - Phone number is non-empty, at most 15 characters, and unique system-wide
//     (uniqueness is enforced by the persistence layer)
type Customer struct {
	id          int64
	name        string
	phoneNumber string

	isConstructed bool
}

// NewCustomer creates a not-yet-persisted Customer. The identifier is assigned
// by the storage layer on first save.
func NewCustomer(name, phoneNumber string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.ID, name, phoneNumber string) (*Customer, error) {
	c, err := NewCustomer(name, phoneNumber)
	if err != nil {
		return nil, err
	}

	c.id = id.Value()
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identifier, or 0 when not yet persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// PhoneNumber returns the customer's unique phone number.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// AssignID records the storage-generated identifier after first persistence.
// Fails if the customer already has an identifier.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("customer %d is already persisted", c.id))
	}

	c.id = id.Value()
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}

	c.name = name
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone_number")
	}
	if len(phoneNumber) > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone_number length", len(phoneNumber), 1, maxPhoneLength)
	}

	c.phoneNumber = phoneNumber
	return nil
}
