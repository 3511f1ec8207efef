package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ryzhova/moberris/internal/adapters/out/postgres/pgerr"
	"github.com/ryzhova/moberris/internal/core/domain/model/customer"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and assigns the generated identifier.
// A duplicate phone number surfaces as a conflict error.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "phone_number")
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = c.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a customer. A customer still referenced by any order is
// protected and the delete fails with a conflict error.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var refs int64
	if err := db.Table("orders").Where("customer_id = ?", id.Value()).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewConflictError("customer")
	}

	result := db.Delete(&CustomerDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "customer")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.String())
	}

	return nil
}
