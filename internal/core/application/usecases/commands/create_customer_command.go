package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name        string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Field length limits are enforced by the domain object on Handle.
func NewCreateCustomerCommand(name, phoneNumber string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhoneNumber(phoneNumber),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// PhoneNumber returns the customer phone number.
func (c CreateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone_number")
	}

	c.phoneNumber = phoneNumber
	return nil
}
