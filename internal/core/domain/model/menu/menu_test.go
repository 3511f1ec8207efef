package menu_test

import (
	"strings"
	"testing"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSize(t *testing.T) {
	t.Run("valid_size_is_created", func(t *testing.T) {
		s, err := menu.NewSize("medium")

		require.NoError(t, err)
		assert.Equal(t, "medium", s.Name())
		assert.Equal(t, int64(0), s.ID())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := menu.NewSize("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("overlong_name_is_rejected", func(t *testing.T) {
		_, err := menu.NewSize(strings.Repeat("x", 16))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewPizza(t *testing.T) {
	small, err := menu.RestoreSize(kernel.MustNewID(1), "small")
	require.NoError(t, err)
	large, err := menu.RestoreSize(kernel.MustNewID(2), "large")
	require.NoError(t, err)

	t.Run("valid_pizza_is_created", func(t *testing.T) {
		p, err := menu.NewPizza("Margherita", []*menu.Size{small, large})

		require.NoError(t, err)
		assert.Equal(t, "Margherita", p.Title())
		assert.Len(t, p.PossibleSizes(), 2)
	})

	t.Run("pizza_without_sizes_is_allowed", func(t *testing.T) {
		// The many-to-many set may be empty; line items validate size existence
		// independently of the advertised set.
		p, err := menu.NewPizza("Calzone", nil)

		require.NoError(t, err)
		assert.Empty(t, p.PossibleSizes())
	})

	t.Run("empty_title_is_rejected", func(t *testing.T) {
		_, err := menu.NewPizza("", []*menu.Size{small})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_size_is_rejected", func(t *testing.T) {
		_, err := menu.NewPizza("Margherita", []*menu.Size{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, menu.ErrSizeIsNotConstructed)
	})
}

func TestRestorePizza(t *testing.T) {
	p, err := menu.RestorePizza(kernel.MustNewID(3), "Pepperoni", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID())
}
