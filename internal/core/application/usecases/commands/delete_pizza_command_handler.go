package commands

import (
	"context"
)

// DeletePizzaCommandHandler handles catalog pizza removal.
type DeletePizzaCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeletePizzaCommandHandler creates a handler for pizza removal.
func NewDeletePizzaCommandHandler(uowFactory MenuUoWFactory) DeletePizzaCommandHandler {
	return DeletePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pizza deletion command. The repository refuses to
// remove a pizza that order line items still reference.
func (h *DeletePizzaCommandHandler) Handle(ctx context.Context, cmd DeletePizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().DeletePizza(ctx, cmd.PizzaID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
