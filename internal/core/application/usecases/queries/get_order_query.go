// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return denormalized read models built with raw SQL, bypassing the
// domain aggregates entirely.
package queries

import (
	"errors"
	"time"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its customer and line items.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderItemResponse represents one line item in the order read model,
// denormalized with its catalog names.
type OrderItemResponse struct {
	ID         int64
	PizzaID    int64
	PizzaTitle string
	SizeID     int64
	SizeName   string
	Quantity   int
}

// OrderResponse represents a complete order in the read model.
type OrderResponse struct {
	ID            int64
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItemResponse
}
