package customer_test

import (
	"strings"
	"testing"

	"github.com/ryzhova/moberris/internal/core/domain/model/customer"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid_customer_is_created", func(t *testing.T) {
		c, err := customer.NewCustomer("Elena", "+79990001122")

		require.NoError(t, err)
		assert.Equal(t, int64(0), c.ID())
		assert.Equal(t, "Elena", c.Name())
		assert.Equal(t, "+79990001122", c.PhoneNumber())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("", "+79990001122")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overlong_name_is_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(strings.Repeat("a", 51), "+79990001122")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty_phone_is_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("Elena", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overlong_phone_is_rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("Elena", strings.Repeat("9", 16))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreCustomer(t *testing.T) {
	c, err := customer.RestoreCustomer(kernel.MustNewID(7), "Ivan", "+70000000001")

	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID())
}

func TestCustomer_AssignID(t *testing.T) {
	c, err := customer.NewCustomer("Elena", "+79990001122")
	require.NoError(t, err)

	require.NoError(t, c.AssignID(kernel.MustNewID(3)))
	assert.Equal(t, int64(3), c.ID())
	require.Error(t, c.AssignID(kernel.MustNewID(4)))
}

func TestCustomer_Validate(t *testing.T) {
	var c customer.Customer
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())
}
