package ports

import (
	"context"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items form one consistency unit: every method reads or
// writes the whole aggregate.
type OrderRepository interface {
	// Add persists a new order together with all of its line items and assigns
	// storage-generated identifiers back to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current aggregate state: scalar fields, line-item
	// creates and updates, and deletion of the items removed by reconciliation.
	// Returns a not-found error when the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with all its line items.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order and cascades to its line items.
	// Returns a not-found error when the order does not exist.
	// The mutability guard is intentionally not consulted here.
	Delete(ctx context.Context, id kernel.ID) error
}
