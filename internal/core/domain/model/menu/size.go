// Package menu contains the Pizza and Size entities that make up the menu.
// Sizes are stored as data rather than a code enumeration so new sizes can be
// introduced without a release. Pizzas and sizes referenced by order line items
// cannot be deleted; the persistence layer rejects such deletes.
package menu

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// ErrSizeIsNotConstructed is returned when a Size instance was not created
// through NewSize or RestoreSize.
var ErrSizeIsNotConstructed = errors.New("Size must be created via NewSize or RestoreSize")

const maxSizeNameLength = 15

// Size is an open-ended pizza size catalog entry, for example "small" or
// "family". The catalog is extended by inserting rows, not by code changes.
type Size struct {
	id   int64
	name string

	isConstructed bool
}

// NewSize creates a not-yet-persisted Size.
func NewSize(name string) (*Size, error) {
	s := &Size{isConstructed: true}
	if err := s.setName(name); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSize reconstructs a Size from persistence.
func RestoreSize(id kernel.ID, name string) (*Size, error) {
	s, err := NewSize(name)
	if err != nil {
		return nil, err
	}
	s.id = id.Value()
	return s, nil
}

// Validate ensures the Size was created through a constructor.
func (s *Size) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSizeIsNotConstructed
	}
	return nil
}

// ID returns the size identifier, or 0 when not yet persisted.
func (s *Size) ID() int64 {
	return s.id
}

// Name returns the size name, unique within the catalog.
func (s *Size) Name() string {
	return s.name
}

// AssignID records the storage-generated identifier after first persistence.
func (s *Size) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	s.id = id.Value()
	return nil
}

func (s *Size) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("size")
	}
	if len(name) > maxSizeNameLength {
		return errs.NewValueIsOutOfRangeError("size length", len(name), 1, maxSizeNameLength)
	}
	s.name = name
	return nil
}
