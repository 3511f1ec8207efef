package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor",
)

// CreatePizzaCommand represents a request to add a pizza to the catalog,
// optionally linked to the sizes it can be ordered in.
type CreatePizzaCommand struct { //nolint:recvcheck //using for validation
	title   string
	sizeIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewCreatePizzaCommand creates a command to add a catalog pizza.
// An empty possible-size list is allowed.
func NewCreatePizzaCommand(title string, sizeIDs []kernel.ID) (CreatePizzaCommand, error) {
	cmd := CreatePizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setSizeIDs(sizeIDs),
	); err != nil {
		return CreatePizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}

// Title returns the pizza title.
func (c CreatePizzaCommand) Title() string {
	return c.title
}

// SizeIDs returns the referenced possible sizes.
func (c CreatePizzaCommand) SizeIDs() []kernel.ID {
	return c.sizeIDs
}

func (c *CreatePizzaCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreatePizzaCommand) setSizeIDs(sizeIDs []kernel.ID) error {
	for _, id := range sizeIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("possible_sizes", err)
		}
	}

	c.sizeIDs = sizeIDs
	return nil
}
