package order_test

import (
	"testing"
	"time"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, pizzaID, sizeID int64, quantity int) *order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.MustNewID(pizzaID), kernel.MustNewID(sizeID), quantity)
	require.NoError(t, err)
	return li
}

func restoredOrder(t *testing.T, id int64, status order.Status, items ...*order.LineItem) *order.Order {
	t.Helper()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.MustNewID(id),
		kernel.MustNewID(1),
		status,
		created,
		created,
		items,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_is_created", func(t *testing.T) {
		items := []*order.LineItem{newItem(t, 3, 1, 4), newItem(t, 2, 2, 1)}

		o, err := order.NewOrder(kernel.MustNewID(1), order.Processing, items)

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, order.Processing, o.Status())
		assert.Len(t, o.LineItems(), 2)
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("empty_line_items_are_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.MustNewID(1), order.New, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.MustNewID(1), order.Status("lost"),
			[]*order.LineItem{newItem(t, 1, 1, 1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_customer_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID{}, order.New,
			[]*order.LineItem{newItem(t, 1, 1, 1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("delivered_order_can_be_created_directly", func(t *testing.T) {
		// The mutability guard applies to updates only; creation in a terminal
		// status is allowed.
		o, err := order.NewOrder(kernel.MustNewID(1), order.Delivered,
			[]*order.LineItem{newItem(t, 1, 1, 1)})

		require.NoError(t, err)
		assert.False(t, o.IsMutable())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("nil_order_is_not_constructed", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Update(t *testing.T) {
	t.Run("overwrites_scalars_and_reconciles_items", func(t *testing.T) {
		o := restoredOrder(t, 10, order.New,
			restoredItem(t, 8, 3, 1, 1),
			restoredItem(t, 18, 2, 2, 5),
		)
		before := o.UpdatedAt()
		desired := []order.LineItemInput{
			input(t, ptr(8), 3, 1, 2),
			input(t, nil, 2, 2, 3),
			input(t, ptr(18), 2, 2, 5),
		}

		err := o.Update(kernel.MustNewID(2), order.Processing, desired)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, int64(2), o.CustomerID().Value())
		assert.Len(t, o.LineItems(), 3)
		assert.Empty(t, o.RemovedLineItems())
		assert.True(t, o.UpdatedAt().After(before) || o.UpdatedAt().Equal(before))
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), o.CreatedAt())
	})

	t.Run("records_removed_items_for_persistence", func(t *testing.T) {
		o := restoredOrder(t, 10, order.New,
			restoredItem(t, 1, 3, 1, 1),
			restoredItem(t, 2, 2, 2, 2),
		)
		desired := []order.LineItemInput{input(t, ptr(1), 3, 1, 7)}

		err := o.Update(kernel.MustNewID(1), order.New, desired)

		require.NoError(t, err)
		require.Len(t, o.RemovedLineItems(), 1)
		assert.Equal(t, int64(2), o.RemovedLineItems()[0].ID())
	})

	t.Run("delivered_order_rejects_update_and_stays_unchanged", func(t *testing.T) {
		o := restoredOrder(t, 10, order.Delivered, restoredItem(t, 1, 3, 1, 1))
		desired := []order.LineItemInput{input(t, ptr(1), 3, 1, 9)}

		err := o.Update(kernel.MustNewID(2), order.New, desired)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectIsImmutable)
		assert.Equal(t, "Delivered order can not be changed.", err.Error())

		// The aggregate is untouched.
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, int64(1), o.CustomerID().Value())
		require.Len(t, o.LineItems(), 1)
		assert.Equal(t, 1, o.LineItems()[0].Quantity())
		assert.Empty(t, o.RemovedLineItems())
	})

	t.Run("empty_desired_set_is_rejected", func(t *testing.T) {
		o := restoredOrder(t, 10, order.New, restoredItem(t, 1, 3, 1, 1))

		err := o.Update(kernel.MustNewID(1), order.New, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("target_status_is_unconstrained", func(t *testing.T) {
		// new -> delivered is legal; only the current status gates the write.
		o := restoredOrder(t, 10, order.New, restoredItem(t, 1, 3, 1, 1))
		desired := []order.LineItemInput{input(t, ptr(1), 3, 1, 1)}

		require.NoError(t, o.Update(kernel.MustNewID(1), order.Delivered, desired))
		assert.False(t, o.IsMutable())

		// After entering the terminal status the next update is rejected.
		err := o.Update(kernel.MustNewID(1), order.New, desired)
		require.Error(t, err)
	})

	t.Run("repeated_update_with_same_desired_set_is_idempotent", func(t *testing.T) {
		o := restoredOrder(t, 10, order.New,
			restoredItem(t, 8, 3, 1, 1),
			restoredItem(t, 18, 2, 2, 5),
		)
		desired := []order.LineItemInput{
			input(t, ptr(8), 3, 1, 2),
			input(t, ptr(18), 2, 2, 5),
		}

		require.NoError(t, o.Update(kernel.MustNewID(1), order.Processing, desired))
		first := snapshotItems(o)

		require.NoError(t, o.Update(kernel.MustNewID(1), order.Processing, desired))
		second := snapshotItems(o)

		assert.Equal(t, first, second)
		assert.Empty(t, o.RemovedLineItems())
	})
}

type itemSnapshot struct {
	id       int64
	pizzaID  int64
	sizeID   int64
	quantity int
}

func snapshotItems(o *order.Order) []itemSnapshot {
	snaps := make([]itemSnapshot, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		snaps = append(snaps, itemSnapshot{
			id:       li.ID(),
			pizzaID:  li.PizzaID().Value(),
			sizeID:   li.SizeID().Value(),
			quantity: li.Quantity(),
		})
	}
	return snaps
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("assigns_generated_id_once", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustNewID(1), order.New,
			[]*order.LineItem{newItem(t, 1, 1, 1)})
		require.NoError(t, err)

		require.NoError(t, o.AssignID(kernel.MustNewID(55)))
		assert.Equal(t, int64(55), o.ID())

		err = o.AssignID(kernel.MustNewID(56))
		require.Error(t, err)
		assert.Equal(t, int64(55), o.ID())
	})
}
