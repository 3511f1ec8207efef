package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a customer.
// Line item identifiers are ignored on creation: every desired item becomes a
// fresh row.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	status     order.Status
	items      []order.LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Requires a valid customer reference, a known status and at least one item.
func NewCreateOrderCommand(
	customerID kernel.ID, status order.Status, items []order.LineItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setStatus(status),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Status returns the initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the desired line items.
func (c CreateOrderCommand) Items() []order.LineItemInput {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderedpizza_set")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
