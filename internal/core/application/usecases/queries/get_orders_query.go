package queries

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list, optionally narrowed by status
// and/or customer. Results are newest-first.
type GetOrdersQuery struct {
	status     *order.Status
	customerID *int64

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. A status filter outside
// the status catalog is rejected rather than silently matching nothing.
func NewGetOrdersQuery(status *string, customerID *int64) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		s := order.Status(*status)
		if err := s.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &s
	}

	if customerID != nil {
		if *customerID <= 0 {
			return GetOrdersQuery{}, errs.NewValueIsInvalidError("customer_id")
		}
		q.customerID = customerID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when absent.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, or nil when absent.
func (q GetOrdersQuery) CustomerID() *int64 {
	return q.customerID
}
