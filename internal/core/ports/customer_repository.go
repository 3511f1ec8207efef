package ports

import (
	"context"

	"github.com/ryzhova/moberris/internal/core/domain/model/customer"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer and assigns the generated identifier.
	// A duplicate phone number is rejected with a conflict error.
	Add(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer by identifier.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// Delete removes a customer. A customer still referenced by any order is
	// protected: the delete fails with a conflict error.
	Delete(ctx context.Context, id kernel.ID) error
}
