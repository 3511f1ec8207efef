package commands

import (
	"errors"

	"github.com/ryzhova/moberris/internal/pkg/errs"
	"github.com/ryzhova/moberris/internal/pkg/guard"
)

var ErrCreateSizeCommandIsNotConstructed = errors.New(
	"CreateSizeCommand must be created via NewCreateSizeCommand constructor",
)

// CreateSizeCommand represents a request to add a size to the catalog.
type CreateSizeCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateSizeCommand creates a command to add a catalog size.
func NewCreateSizeCommand(name string) (CreateSizeCommand, error) {
	cmd := CreateSizeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateSizeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSizeCommand) Validate() error {
	return c.guard.Validate(ErrCreateSizeCommandIsNotConstructed)
}

// Name returns the size name.
func (c CreateSizeCommand) Name() string {
	return c.name
}

func (c *CreateSizeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
