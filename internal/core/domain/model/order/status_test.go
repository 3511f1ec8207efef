package order_test

import (
	"testing"

	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("catalog_members_are_valid", func(t *testing.T) {
		for _, s := range []order.Status{order.New, order.Processing, order.Delivered} {
			require.NoError(t, s.Validate(), "status %q", s)
		}
	})

	t.Run("unknown_status_is_invalid", func(t *testing.T) {
		err := order.Status("shipped").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_status_is_invalid", func(t *testing.T) {
		require.Error(t, order.Status("").Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.New.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestStatus_AssertMutable(t *testing.T) {
	t.Run("non_terminal_statuses_pass", func(t *testing.T) {
		require.NoError(t, order.New.AssertMutable())
		require.NoError(t, order.Processing.AssertMutable())
	})

	t.Run("delivered_fails_with_client_facing_message", func(t *testing.T) {
		err := order.Delivered.AssertMutable()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectIsImmutable)
		assert.Equal(t, "Delivered order can not be changed.", err.Error())
	})
}

func TestStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "New", order.New.DisplayName())
	assert.Equal(t, "Delivered", order.Delivered.DisplayName())
	assert.Equal(t, "burnt", order.Status("burnt").DisplayName())
}
