package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ryzhova/moberris/internal/core/application/usecases/commands"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/pkg/errs"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	items := []order.LineItemInput{testLineItemInput(nil, 10, 20, 2)}
	cmd, err := commands.NewCreateOrderCommand(kernel.MustNewID(1), order.New, items)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, kernel.MustNewID(1)).Return(testCustomer(1), nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetPizza", mock.Anything, kernel.MustNewID(10)).Return(testPizza(10), nil).Once(),
		menuRepo.On("GetSize", mock.Anything, kernel.MustNewID(20)).Return(testSize(20), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*order.Order)
				require.NoError(t, aggregate.AssignID(kernel.MustNewID(77)))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, kernel.MustNewID(1)).
			Return(nil, errs.NewObjectNotFoundError("customer", "1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	// A customer the caller referenced but that does not exist is the
	// caller's mistake, not a missing resource.
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	var invalidErr *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "customer_id", invalidErr.ParamName)

	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownPizza(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	customerRepo := new(MockCustomerRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, kernel.MustNewID(1)).Return(testCustomer(1), nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetPizza", mock.Anything, kernel.MustNewID(10)).
			Return(nil, errs.NewObjectNotFoundError("pizza", "10")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, kernel.MustNewID(1)).Return(testCustomer(1), nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetPizza", mock.Anything, kernel.MustNewID(10)).Return(testPizza(10), nil).Once(),
		menuRepo.On("GetSize", mock.Anything, kernel.MustNewID(20)).Return(testSize(20), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	uow.AssertExpectations(t)
}
