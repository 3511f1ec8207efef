package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrDeletePizzaCommandIsNotConstructed = errors.New(
	"DeletePizzaCommand must be created via NewDeletePizzaCommand constructor",
)

// DeletePizzaCommand represents a request to remove a pizza from the catalog.
// A pizza still referenced by order line items cannot be removed.
type DeletePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeletePizzaCommand creates a command to delete a catalog pizza.
func NewDeletePizzaCommand(pizzaID kernel.ID) (DeletePizzaCommand, error) {
	cmd := DeletePizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPizzaID(pizzaID); err != nil {
		return DeletePizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePizzaCommand) Validate() error {
	return c.guard.Validate(ErrDeletePizzaCommandIsNotConstructed)
}

// PizzaID returns the pizza being deleted.
func (c DeletePizzaCommand) PizzaID() kernel.ID {
	return c.pizzaID
}

func (c *DeletePizzaCommand) setPizzaID(pizzaID kernel.ID) error {
	if err := pizzaID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pizza_id", err)
	}

	c.pizzaID = pizzaID
	return nil
}
