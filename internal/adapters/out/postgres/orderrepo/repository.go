package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ryzhova/moberris/internal/adapters/out/postgres/pgerr"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with all of its line items and assigns the
// generated identifiers back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order")
	}

	orderID, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(orderID); err != nil {
		return err
	}

	// Items keep insert order, so generated ids map back by index.
	for i, item := range aggregate.LineItems() {
		itemID, idErr := kernel.NewID(dto.Items[i].ID)
		if idErr != nil {
			return idErr
		}
		if idErr = item.AssignID(itemID); idErr != nil {
			return idErr
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order: scalar fields, line-item creates and
// updates, and deletion of the items removed by reconciliation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_id": dto.CustomerID,
		"status":      dto.Status,
		"updated_at":  dto.UpdatedAt,
	})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	for i := range dto.Items {
		item := &dto.Items[i]
		item.OrderID = dto.ID

		if item.ID == 0 {
			if err := db.Create(item).Error; err != nil {
				return pgerr.Translate(err, "orderedpizza_set")
			}

			itemID, idErr := kernel.NewID(item.ID)
			if idErr != nil {
				return idErr
			}
			if idErr = aggregate.LineItems()[i].AssignID(itemID); idErr != nil {
				return idErr
			}
			continue
		}

		itemResult := db.Model(&OrderedPizzaDTO{}).
			Where("id = ? AND order_id = ?", item.ID, item.OrderID).
			Updates(map[string]any{
				"pizza_id": item.PizzaID,
				"size_id":  item.SizeID,
				"quantity": item.Quantity,
			})
		if itemResult.Error != nil {
			return pgerr.Translate(itemResult.Error, "orderedpizza_set")
		}
		if itemResult.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("ordered_pizza", item.ID)
		}
	}

	if removed := aggregate.RemovedLineItems(); len(removed) > 0 {
		ids := make([]int64, 0, len(removed))
		for _, item := range removed {
			ids = append(ids, item.ID())
		}
		if err := db.Where("order_id = ? AND id IN ?", dto.ID, ids).
			Delete(&OrderedPizzaDTO{}).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate by ID with all its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordered_pizzas.id")
		}).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order and its line items. Intentionally does not consult
// the mutability guard: a delivered order may still be deleted.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	// Items first: no reliance on the schema cascading the delete.
	if err := db.Where("order_id = ?", id.Value()).Delete(&OrderedPizzaDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
