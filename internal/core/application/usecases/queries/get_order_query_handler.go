package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when the order does
// not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			c.phone_number,
			o.status,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Value()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	items, err := fetchOrderItems(ctx, h.db, []int64{resp.ID})
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items[resp.ID]

	return resp, nil
}

// fetchOrderItems loads denormalized line items for the given orders, keyed
// by order id. Items are returned in insertion order.
func fetchOrderItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]OrderItemResponse, error) {
	items := make(map[int64][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			op.order_id,
			op.id,
			op.pizza_id,
			p.title,
			op.size_id,
			s.name,
			op.quantity
		FROM ordered_pizzas op
		JOIN pizzas p ON p.id = op.pizza_id
		JOIN sizes s ON s.id = op.size_id
		WHERE op.order_id IN ?
		ORDER BY op.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var item OrderItemResponse

		err = rows.Scan(
			&orderID,
			&item.ID,
			&item.PizzaID,
			&item.PizzaTitle,
			&item.SizeID,
			&item.SizeName,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
