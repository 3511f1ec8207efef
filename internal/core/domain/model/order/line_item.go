package order

import (
	"errors"
	"fmt"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// Quantity bounds match a positive small integer column.
const (
	minQuantity = 1
	maxQuantity = 32767
)

// LineItem is one (pizza, size, quantity) entry within an order.
// A line item gains identity only after first persistence; until then its id
// is 0. Line items belong to exactly one order and are destroyed with it.
type LineItem struct {
	id       int64
	pizzaID  kernel.ID
	sizeID   kernel.ID
	quantity int

	isConstructed bool
}

// NewLineItem creates a not-yet-persisted line item. Both pizzaID and sizeID
// must be valid identifiers; whether they resolve to existing records is
// checked against the menu at write time, not here.
func NewLineItem(pizzaID, sizeID kernel.ID, quantity int) (*LineItem, error) {
	li := &LineItem{isConstructed: true}

	if err := errors.Join(
		li.setPizzaID(pizzaID),
		li.setSizeID(sizeID),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreLineItem reconstructs a persisted line item.
func RestoreLineItem(id kernel.ID, pizzaID, sizeID kernel.ID, quantity int) (*LineItem, error) {
	li, err := NewLineItem(pizzaID, sizeID, quantity)
	if err != nil {
		return nil, err
	}

	li.id = id.Value()
	return li, nil
}

// Validate ensures the line item was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item identifier, or 0 when not yet persisted.
func (li *LineItem) ID() int64 {
	return li.id
}

// IsPersisted reports whether the line item has storage identity.
func (li *LineItem) IsPersisted() bool {
	return li.id != 0
}

// PizzaID returns the referenced pizza identifier.
func (li *LineItem) PizzaID() kernel.ID {
	return li.pizzaID
}

// SizeID returns the referenced size identifier.
func (li *LineItem) SizeID() kernel.ID {
	return li.sizeID
}

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// AssignID records the storage-generated identifier after first persistence.
func (li *LineItem) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if li.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("line item %d is already persisted", li.id))
	}

	li.id = id.Value()
	return nil
}

// change overwrites pizza, size and quantity in place. Used by the reconciler
// when a desired input claims this item.
func (li *LineItem) change(pizzaID, sizeID kernel.ID, quantity int) error {
	return errors.Join(
		li.setPizzaID(pizzaID),
		li.setSizeID(sizeID),
		li.setQuantity(quantity),
	)
}

func (li *LineItem) setPizzaID(pizzaID kernel.ID) error {
	if err := pizzaID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pizza_id", err)
	}
	li.pizzaID = pizzaID
	return nil
}

func (li *LineItem) setSizeID(sizeID kernel.ID) error {
	if err := sizeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("size_id", err)
	}
	li.sizeID = sizeID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < minQuantity || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minQuantity, maxQuantity)
	}
	li.quantity = quantity
	return nil
}
