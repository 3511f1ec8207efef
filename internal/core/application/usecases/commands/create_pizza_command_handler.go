package commands

import (
	"context"

	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
)

// CreatePizzaCommandHandler handles catalog pizza creation. Referenced sizes
// are resolved in the same transaction that persists the pizza.
type CreatePizzaCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreatePizzaCommandHandler creates a handler for pizza creation.
func NewCreatePizzaCommandHandler(uowFactory MenuUoWFactory) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pizza creation command and returns the persisted
// pizza with its resolved sizes and assigned identifier.
func (h *CreatePizzaCommandHandler) Handle(ctx context.Context, cmd CreatePizzaCommand) (*menu.Pizza, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sizes := make([]*menu.Size, 0, len(cmd.SizeIDs()))
	for _, sizeID := range cmd.SizeIDs() {
		s, err := uow.MenuRepository().GetSize(ctx, sizeID)
		if err != nil {
			return nil, asReferenceError("possible_sizes", err)
		}
		sizes = append(sizes, s)
	}

	p, err := menu.NewPizza(cmd.Title(), sizes)
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().AddPizza(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
