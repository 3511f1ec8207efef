package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/generated/servers"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

func TestOrderCommandArgs(t *testing.T) {
	body := servers.NewOrder{
		CustomerId: 7,
		Status:     servers.NewOrderStatusProcessing,
		OrderedpizzaSet: []servers.NewOrderedPizza{
			{PizzaId: 11, SizeId: 3, Quantity: 2},
		},
	}

	customerID, status, items, err := orderCommandArgs(body)

	require.NoError(t, err)
	assert.Equal(t, int64(7), customerID.Value())
	assert.Equal(t, order.Processing, status)
	require.Len(t, items, 1)
	assert.Equal(t, int64(11), items[0].PizzaID().Value())
	assert.Equal(t, int64(3), items[0].SizeID().Value())
	assert.Equal(t, 2, items[0].Quantity())
}

func TestOrderCommandArgs_MissingStatus(t *testing.T) {
	body := servers.NewOrder{
		CustomerId: 7,
		OrderedpizzaSet: []servers.NewOrderedPizza{
			{PizzaId: 11, SizeId: 3, Quantity: 2},
		},
	}

	_, _, _, err := orderCommandArgs(body)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "status", required.ParamName)
}

func TestOrderCommandArgs_MissingCustomer(t *testing.T) {
	body := servers.NewOrder{
		Status: servers.NewOrderStatusNew,
		OrderedpizzaSet: []servers.NewOrderedPizza{
			{PizzaId: 11, SizeId: 3, Quantity: 2},
		},
	}

	_, _, _, err := orderCommandArgs(body)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
