package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full-state update of an existing order:
// scalar fields plus the complete desired set of line items. Items carrying a
// known identifier update the matching row, the rest are inserted, and rows
// absent from the desired set are removed.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	customerID kernel.ID
	status     order.Status
	items      []order.LineItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(
	orderID, customerID kernel.ID, status order.Status, items []order.LineItemInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStatus(status),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// CustomerID returns the customer the order should belong to.
func (c UpdateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Status returns the target order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the complete desired set of line items.
func (c UpdateOrderCommand) Items() []order.LineItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setItems accepts an empty desired set on purpose: the aggregate decides
// whether emptiness is an error, and the mutability guard must fire first for
// delivered orders.
func (c *UpdateOrderCommand) setItems(items []order.LineItemInput) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
