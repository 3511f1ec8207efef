package ports

import (
	"context"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the pizza and size
// catalogs. Both are open-ended lookup tables extended at runtime.
type MenuRepository interface {
	// AddSize persists a new size and assigns the generated identifier.
	AddSize(ctx context.Context, s *menu.Size) error

	// GetSize retrieves a size by identifier.
	GetSize(ctx context.Context, id kernel.ID) (*menu.Size, error)

	// AddPizza persists a new pizza with its possible-size associations and
	// assigns the generated identifier.
	AddPizza(ctx context.Context, p *menu.Pizza) error

	// GetPizza retrieves a pizza with its possible sizes.
	GetPizza(ctx context.Context, id kernel.ID) (*menu.Pizza, error)

	// DeletePizza removes a pizza and its possible-size associations. A pizza
	// still referenced by any order line item is protected: the delete fails
	// with a conflict error.
	DeletePizza(ctx context.Context, id kernel.ID) error
}
