package menu

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
// through NewPizza or RestorePizza.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza or RestorePizza")

const maxTitleLength = 100

// Pizza is a menu item offered in a set of sizes (many-to-many with Size).
// The possible-size set restricts what the menu advertises; line items are
// validated against size existence only, not against this set.
type Pizza struct {
	id            int64
	title         string
	possibleSizes []*Size

	isConstructed bool
}

// NewPizza creates a not-yet-persisted Pizza with its possible sizes.
func NewPizza(title string, possibleSizes []*Size) (*Pizza, error) {
	p := &Pizza{isConstructed: true}

	if err := errors.Join(
		p.setTitle(title),
		p.setPossibleSizes(possibleSizes),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza reconstructs a Pizza from persistence.
func RestorePizza(id kernel.ID, title string, possibleSizes []*Size) (*Pizza, error) {
	p, err := NewPizza(title, possibleSizes)
	if err != nil {
		return nil, err
	}
	p.id = id.Value()
	return p, nil
}

// Validate ensures the Pizza was created through a constructor.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}
	return nil
}

// ID returns the pizza identifier, or 0 when not yet persisted.
func (p *Pizza) ID() int64 {
	return p.id
}

// Title returns the menu title of the pizza.
func (p *Pizza) Title() string {
	return p.title
}

// PossibleSizes returns the sizes this pizza is offered in.
func (p *Pizza) PossibleSizes() []*Size {
	return p.possibleSizes
}

// AssignID records the storage-generated identifier after first persistence.
func (p *Pizza) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if p.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	p.id = id.Value()
	return nil
}

func (p *Pizza) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, maxTitleLength)
	}
	p.title = title
	return nil
}

func (p *Pizza) setPossibleSizes(sizes []*Size) error {
	for _, s := range sizes {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	p.possibleSizes = sizes
	return nil
}
