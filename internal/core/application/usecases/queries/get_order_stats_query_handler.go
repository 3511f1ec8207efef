package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/ryzhova/moberris/internal/core/domain/model/order"
)

// GetOrderStatsQueryHandler computes the order count per status.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for the status census.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the census. Statuses with no orders are omitted.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]OrderStatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]OrderStatusCount, 0)
	for rows.Next() {
		var stat OrderStatusCount
		if err = rows.Scan(&stat.Status, &stat.Count); err != nil {
			return nil, err
		}

		stat.DisplayName = order.Status(stat.Status).DisplayName()
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
