// Package menurepo provides data transfer objects and mapping functions for
// the pizza and size catalogs, including the possible-size join table.
package menurepo

import (
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
)

// SizeDTO represents the database structure for persisting sizes.
type SizeDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(15);not null"`
}

// TableName overrides GORM's default naming convention to use "sizes".
func (SizeDTO) TableName() string {
	return "sizes"
}

// PizzaDTO represents the database structure for persisting pizzas.
// Possible sizes live in the pizza_possible_sizes join table.
type PizzaDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(100);not null"`
	PossibleSizes []SizeDTO `gorm:"many2many:pizza_possible_sizes;joinForeignKey:PizzaID;joinReferences:SizeID"`
}

// TableName overrides GORM's default naming convention to use "pizzas".
func (PizzaDTO) TableName() string {
	return "pizzas"
}

// sizeFromDomain converts a size domain object to its database representation.
func sizeFromDomain(s *menu.Size) SizeDTO {
	return SizeDTO{
		ID:   s.ID(),
		Name: s.Name(),
	}
}

// sizeToDomain converts a database DTO to a size domain object.
func sizeToDomain(dto SizeDTO) (*menu.Size, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return menu.RestoreSize(id, dto.Name)
}

// pizzaFromDomain converts a pizza domain object to its database representation.
func pizzaFromDomain(p *menu.Pizza) PizzaDTO {
	sizes := make([]SizeDTO, 0, len(p.PossibleSizes()))
	for _, s := range p.PossibleSizes() {
		sizes = append(sizes, sizeFromDomain(s))
	}

	return PizzaDTO{
		ID:            p.ID(),
		Title:         p.Title(),
		PossibleSizes: sizes,
	}
}

// pizzaToDomain converts a database DTO to a pizza domain object.
func pizzaToDomain(dto PizzaDTO) (*menu.Pizza, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	sizes := make([]*menu.Size, 0, len(dto.PossibleSizes))
	for _, sizeDTO := range dto.PossibleSizes {
		s, sizeErr := sizeToDomain(sizeDTO)
		if sizeErr != nil {
			return nil, sizeErr
		}
		sizes = append(sizes, s)
	}

	return menu.RestorePizza(id, dto.Title, sizes)
}
