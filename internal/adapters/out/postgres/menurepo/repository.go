package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ryzhova/moberris/internal/adapters/out/postgres/pgerr"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddSize saves a new size and assigns the generated identifier.
func (r *GormMenuRepository) AddSize(ctx context.Context, s *menu.Size) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sizeFromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "size")
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = s.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

// GetSize retrieves a size by ID.
func (r *GormMenuRepository) GetSize(ctx context.Context, id kernel.ID) (*menu.Size, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SizeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("size", id.String())
		}
		return nil, err
	}

	return sizeToDomain(dto)
}

// AddPizza saves a new pizza with its possible-size associations and assigns
// the generated identifier. Referenced sizes must already exist; only the
// join rows are created here.
func (r *GormMenuRepository) AddPizza(ctx context.Context, p *menu.Pizza) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := pizzaFromDomain(p)
	if err := r.db.WithContext(ctx).Omit("PossibleSizes.*").Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "possible_sizes")
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = p.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// GetPizza retrieves a pizza with its possible sizes.
func (r *GormMenuRepository) GetPizza(ctx context.Context, id kernel.ID) (*menu.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	err := r.db.WithContext(ctx).
		Preload("PossibleSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("sizes.id")
		}).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return pizzaToDomain(dto)
}

// DeletePizza removes a pizza and its possible-size join rows. A pizza still
// referenced by any order line item is protected and the delete fails with a
// conflict error.
func (r *GormMenuRepository) DeletePizza(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var refs int64
	if err := db.Table("ordered_pizzas").Where("pizza_id = ?", id.Value()).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewConflictError("pizza")
	}

	if err := db.Exec("DELETE FROM pizza_possible_sizes WHERE pizza_id = ?", id.Value()).Error; err != nil {
		return err
	}

	result := db.Delete(&PizzaDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "pizza")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", id.String())
	}

	return nil
}
