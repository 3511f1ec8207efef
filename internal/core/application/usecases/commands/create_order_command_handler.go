package commands

import (
	"context"
	"errors"

	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/core/ports"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the customer and catalog references in the same transaction that
// persists the aggregate, so a torn write can never leave dangling items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier
// assigned to the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return 0, asReferenceError("customer_id", err)
	}

	items, err := buildLineItems(ctx, uow.MenuRepository(), cmd.Items())
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), cmd.Status(), items)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

// buildLineItems verifies catalog references and converts desired inputs into
// fresh line items. Identifiers carried by the inputs are ignored here.
func buildLineItems(
	ctx context.Context, menuRepo ports.MenuRepository, inputs []order.LineItemInput,
) ([]*order.LineItem, error) {
	items := make([]*order.LineItem, 0, len(inputs))
	for _, input := range inputs {
		if err := verifyItemReferences(ctx, menuRepo, input); err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(input.PizzaID(), input.SizeID(), input.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// verifyItemReferences checks that the pizza and size referenced by a desired
// item exist in the catalog.
func verifyItemReferences(ctx context.Context, menuRepo ports.MenuRepository, input order.LineItemInput) error {
	if _, err := menuRepo.GetPizza(ctx, input.PizzaID()); err != nil {
		return asReferenceError("pizza_id", err)
	}

	if _, err := menuRepo.GetSize(ctx, input.SizeID()); err != nil {
		return asReferenceError("size_id", err)
	}

	return nil
}

// asReferenceError downgrades a missing referenced object to an invalid-value
// error: the caller supplied a bad reference, the target resource itself is
// not what was requested.
func asReferenceError(paramName string, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return err
}
