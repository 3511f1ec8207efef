package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for one customer order.
//
// Invariants:
//   - references a valid customer
//   - status is a member of the status catalog
//   - owns at least one line item at all times
//   - createdAt is set once; updatedAt is refreshed on every write
//   - a terminal status freezes the whole aggregate for updates
//
// The mutability guard is intentionally not applied on creation (an order may
// be created directly in any status, including a terminal one) nor on deletion.
type Order struct {
	id         int64
	customerID kernel.ID
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	lineItems  []*LineItem

	// removedLineItems holds items unclaimed by the latest Update; the
	// persistence layer deletes them when it saves the aggregate.
	removedLineItems []*LineItem

	isConstructed bool
}

// NewOrder creates a not-yet-persisted order owning the given line items.
// The line-item list must be non-empty. Timestamps are initialized to now.
func NewOrder(customerID kernel.ID, status Status, lineItems []*LineItem) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs a persisted order aggregate.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	lineItems []*LineItem,
) (*Order, error) {
	o, err := NewOrder(customerID, status, lineItems)
	if err != nil {
		return nil, err
	}

	o.id = id.Value()
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier, or 0 when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning customer reference.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp. Set once, never changed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-write timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// LineItems returns the order's current line items in order.
func (o *Order) LineItems() []*LineItem {
	return o.lineItems
}

// RemovedLineItems returns the items dropped by the latest Update. The
// persistence layer deletes these rows when saving the aggregate; the slice is
// reset on every Update call.
func (o *Order) RemovedLineItems() []*LineItem {
	return o.removedLineItems
}

// IsMutable reports whether the order accepts guarded writes.
func (o *Order) IsMutable() bool {
	return !o.status.IsTerminal()
}

// Update replaces the order's scalar fields and reconciles its line items
// against the desired inputs as one logical operation.
//
// The mutability guard runs first: a terminal current status rejects the whole
// write before any field is touched. An empty desired list is rejected because
// an order must always own at least one line item. On success the status and
// customer reference are overwritten (the target status is unconstrained),
// line items are reconciled via ReconcileLineItems, and updatedAt is refreshed.
//
// Update mutates only in-memory state; all persistence, including deletion of
// unclaimed items, happens atomically when the aggregate is saved.
func (o *Order) Update(customerID kernel.ID, status Status, desired []LineItemInput) error {
	if err := o.status.AssertMutable(); err != nil {
		return err
	}
	if len(desired) == 0 {
		return errs.NewValueIsRequiredError("orderedpizza_set")
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	if err := status.Validate(); err != nil {
		return err
	}

	kept, removed, err := ReconcileLineItems(o.lineItems, desired)
	if err != nil {
		return err
	}

	o.customerID = customerID
	o.status = status
	o.lineItems = kept
	o.removedLineItems = removed
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignID records the storage-generated identifier after first persistence.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order %d is already persisted", o.id))
	}

	o.id = id.Value()
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("orderedpizza_set")
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = lineItems
	return nil
}
