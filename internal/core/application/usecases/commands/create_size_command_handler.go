package commands

import (
	"context"

	"github.com/ryzhova/moberris/internal/core/domain/model/menu"
)

// CreateSizeCommandHandler handles catalog size creation.
type CreateSizeCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateSizeCommandHandler creates a handler for size creation.
func NewCreateSizeCommandHandler(uowFactory MenuUoWFactory) CreateSizeCommandHandler {
	return CreateSizeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the size creation command and returns the identifier
// assigned to the new size.
func (h *CreateSizeCommandHandler) Handle(ctx context.Context, cmd CreateSizeCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	s, err := menu.NewSize(cmd.Name())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().AddSize(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return s.ID(), nil
}
