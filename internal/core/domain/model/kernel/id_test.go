package kernel_test

import (
	"testing"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive_value_is_valid", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Value())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_value_is_rejected", func(t *testing.T) {
		_, err := kernel.NewID(-7)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMustNewID(t *testing.T) {
	t.Run("valid_value_does_not_panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			id := kernel.MustNewID(1)
			assert.Equal(t, int64(1), id.Value())
		})
	})

	t.Run("invalid_value_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			kernel.MustNewID(0)
		})
	})
}

func TestID_IsEqual(t *testing.T) {
	a := kernel.MustNewID(5)
	b := kernel.MustNewID(5)
	c := kernel.MustNewID(6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestID_Validate_ZeroValue(t *testing.T) {
	var id kernel.ID

	err := id.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrIDIsNotConstructed, err)
}
