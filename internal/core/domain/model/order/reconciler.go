package order

import (
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// LineItemInput is the desired state of one line item in a write request.
// An input without an id describes a new item; an input with an id refers to
// an existing item of the order being updated.
type LineItemInput struct {
	id       *kernel.ID
	pizzaID  kernel.ID
	sizeID   kernel.ID
	quantity int

	isConstructed bool
}

// NewLineItemInput creates a validated desired line-item state.
// id is nil for new items. Quantity bounds are the same as for LineItem.
func NewLineItemInput(id *kernel.ID, pizzaID, sizeID kernel.ID, quantity int) (LineItemInput, error) {
	if id != nil {
		if err := id.Validate(); err != nil {
			return LineItemInput{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
	}
	if err := pizzaID.Validate(); err != nil {
		return LineItemInput{}, errs.NewValueIsRequiredErrorWithCause("pizza_id", err)
	}
	if err := sizeID.Validate(); err != nil {
		return LineItemInput{}, errs.NewValueIsRequiredErrorWithCause("size_id", err)
	}
	if quantity < minQuantity || quantity > maxQuantity {
		return LineItemInput{}, errs.NewValueIsOutOfRangeError("quantity", quantity, minQuantity, maxQuantity)
	}

	return LineItemInput{
		id:            id,
		pizzaID:       pizzaID,
		sizeID:        sizeID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the input was created through NewLineItemInput.
func (in LineItemInput) Validate() error {
	if !in.isConstructed {
		return errs.NewValueIsRequiredError("line item input must be created via NewLineItemInput")
	}
	return nil
}

// ID returns the claimed line-item identifier, or nil for a new item.
func (in LineItemInput) ID() *kernel.ID {
	return in.id
}

// PizzaID returns the desired pizza reference.
func (in LineItemInput) PizzaID() kernel.ID {
	return in.pizzaID
}

// SizeID returns the desired size reference.
func (in LineItemInput) SizeID() kernel.ID {
	return in.sizeID
}

// Quantity returns the desired quantity.
func (in LineItemInput) Quantity() int {
	return in.quantity
}

// ReconcileLineItems diffs the order's existing line items against the desired
// inputs and produces the resulting set plus the items to delete.
//
// Matching is pop-on-claim over a map keyed by existing item id, processed in
// input order:
//
//   - an input whose id is present in the map claims that item: the item is
//     updated in place, removed from the map, and appended to kept
//   - an input with no id, or with an id not (or no longer) in the map, becomes
//     a brand-new item
//   - whatever remains unclaimed in the map after all inputs is returned in
//     removed, preserving the existing order
//
// A duplicate id within desired therefore claims on its first occurrence only;
// later occurrences find the id already popped and turn into inserts. Clients
// rely on this observable behavior, so it must not change.
//
// The function has no minimum-count policy; rejecting an empty desired set is
// the enclosing aggregate's responsibility.
func ReconcileLineItems(existing []*LineItem, desired []LineItemInput) (kept, removed []*LineItem, err error) {
	mapping := make(map[int64]*LineItem, len(existing))
	for _, li := range existing {
		mapping[li.ID()] = li
	}

	kept = make([]*LineItem, 0, len(desired))
	for _, in := range desired {
		if err = in.Validate(); err != nil {
			return nil, nil, err
		}

		if id := in.ID(); id != nil {
			if li, ok := mapping[id.Value()]; ok {
				delete(mapping, id.Value())
				if err = li.change(in.PizzaID(), in.SizeID(), in.Quantity()); err != nil {
					return nil, nil, err
				}
				kept = append(kept, li)
				continue
			}
		}

		li, itemErr := NewLineItem(in.PizzaID(), in.SizeID(), in.Quantity())
		if itemErr != nil {
			return nil, nil, itemErr
		}
		kept = append(kept, li)
	}

	removed = make([]*LineItem, 0, len(mapping))
	for _, li := range existing {
		if _, ok := mapping[li.ID()]; ok {
			removed = append(removed, li)
		}
	}

	return kept, removed, nil
}
