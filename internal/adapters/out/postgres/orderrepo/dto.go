// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate: an order row plus its line-item rows are read and written as one
// consistency unit.
package orderrepo

import (
	"time"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status for the main listing queries.
type OrderDTO struct {
	ID         int64             `gorm:"primaryKey;autoIncrement"`
	CustomerID int64             `gorm:"not null;index"`
	Status     string            `gorm:"type:varchar(15);not null;index"`
	CreatedAt  time.Time         `gorm:"not null;index"`
	UpdatedAt  time.Time         `gorm:"not null"`
	Items      []OrderedPizzaDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderedPizzaDTO represents a single line item row belonging to an order.
type OrderedPizzaDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"not null;index"`
	PizzaID  int64 `gorm:"not null;index"`
	SizeID   int64 `gorm:"not null;index"`
	Quantity int   `gorm:"type:smallint;not null"`
}

// TableName overrides GORM's default naming convention to use "ordered_pizzas".
func (OrderedPizzaDTO) TableName() string {
	return "ordered_pizzas"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line items keep their position so generated identifiers can be mapped back
// by index after insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderedPizzaDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, OrderedPizzaDTO{
			ID:       item.ID(),
			OrderID:  aggregate.ID(),
			PizzaID:  item.PizzaID().Value(),
			SizeID:   item.SizeID().Value(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID().Value(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, order.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt, items)
}

// lineItemToDomain converts a line item DTO to its domain entity.
func lineItemToDomain(dto OrderedPizzaDTO) (*order.LineItem, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	pizzaID, err := kernel.NewID(dto.PizzaID)
	if err != nil {
		return nil, err
	}

	sizeID, err := kernel.NewID(dto.SizeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, pizzaID, sizeID, dto.Quantity)
}
