// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"github.com/ryzhova/moberris/internal/core/domain/model/customer"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
// The phone number carries a unique index: one account per phone.
type CustomerDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);not null"`
	PhoneNumber string `gorm:"type:varchar(15);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain object to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		PhoneNumber: c.PhoneNumber(),
	}
}

// toDomain converts a database DTO to a customer domain object.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.PhoneNumber)
}
