package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles full-state order updates. Loads the
// aggregate, lets it reconcile the desired line items against the current
// ones, and persists the resulting changes atomically.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// A missing order surfaces as a not-found error; updating a delivered order
// fails inside the aggregate before any reference is resolved.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// A delivered order must be rejected before any reference lookup.
	if err = aggregate.Status().AssertMutable(); err != nil {
		return err
	}

	if _, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return asReferenceError("customer_id", err)
	}

	for _, input := range cmd.Items() {
		if err = verifyItemReferences(ctx, uow.MenuRepository(), input); err != nil {
			return err
		}
	}

	if err = aggregate.Update(cmd.CustomerID(), cmd.Status(), cmd.Items()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
