package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order listing read model.
// Runs one query for the order rows and one for all their line items instead
// of a query per order.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Orders come back newest-first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
	`
	args := make([]any, 0, 2)
	where := ""

	if status := query.Status(); status != nil {
		where = " WHERE o.status = ?"
		args = append(args, status.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		if where == "" {
			where = " WHERE o.customer_id = ?"
		} else {
			where += " AND o.customer_id = ?"
		}
		args = append(args, *customerID)
	}

	sqlQuery += where + " ORDER BY o.created_at DESC, o.id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var resp OrderResponse
		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := fetchOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}
