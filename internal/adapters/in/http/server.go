// Package http adapts the generated HTTP server interface to the application
// use cases. Handlers translate wire types into commands and queries, and map
// application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/ryzhova/moberris/internal/core/application/usecases/commands"
	"github.com/ryzhova/moberris/internal/core/application/usecases/queries"
	"github.com/ryzhova/moberris/internal/core/domain/model/kernel"
	"github.com/ryzhova/moberris/internal/core/domain/model/order"
	"github.com/ryzhova/moberris/internal/generated/servers"
	"github.com/ryzhova/moberris/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createCustomerHandler commands.CreateCustomerCommandHandler
	deleteCustomerHandler commands.DeleteCustomerCommandHandler
	createSizeHandler     commands.CreateSizeCommandHandler
	createPizzaHandler    commands.CreatePizzaCommandHandler
	deletePizzaHandler    commands.DeletePizzaCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	createSizeHandler commands.CreateSizeCommandHandler,
	createPizzaHandler commands.CreatePizzaCommandHandler,
	deletePizzaHandler commands.DeletePizzaCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		createCustomerHandler: createCustomerHandler,
		deleteCustomerHandler: deleteCustomerHandler,
		createSizeHandler:     createSizeHandler,
		createPizzaHandler:    createPizzaHandler,
		deletePizzaHandler:    deletePizzaHandler,
		getOrderHandler:       getOrderHandler,
		getOrdersHandler:      getOrdersHandler,
	}
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status *string
	if params.Status != nil {
		v := string(*params.Status)
		status = &v
	}

	query, err := queries.NewGetOrdersQuery(status, params.CustomerId)
	if err != nil {
		return renderError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toWireOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, status, items, err := orderCommandArgs(body)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, status, items)
	if err != nil {
		return renderError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/{order_id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrder handles PUT /api/v1/orders/{order_id} - replaces the order
// state, reconciling line items against the submitted full state.
func (s *Server) UpdateOrder(ctx echo.Context, orderID int64) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.NewID(orderID)
	if err != nil {
		return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	customerID, status, items, err := orderCommandArgs(body)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, customerID, status, items)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/{order_id} - removes an order
// and its line items. Delivered orders may be deleted.
func (s *Server) DeleteOrder(ctx echo.Context, orderID int64) error {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.PhoneNumber)
	if err != nil {
		return renderError(ctx, err)
	}

	customerID, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:          customerID,
		Name:        cmd.Name(),
		PhoneNumber: cmd.PhoneNumber(),
	})
}

// DeleteCustomer handles DELETE /api/v1/customers/{customer_id} - removes a
// customer that has no orders.
func (s *Server) DeleteCustomer(ctx echo.Context, customerID int64) error {
	id, err := kernel.NewID(customerID)
	if err != nil {
		return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateSize handles POST /api/v1/sizes - adds a size to the catalog.
func (s *Server) CreateSize(ctx echo.Context) error {
	var body servers.NewSize
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSizeCommand(body.Name)
	if err != nil {
		return renderError(ctx, err)
	}

	sizeID, err := s.createSizeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Size{
		Id:   sizeID,
		Name: cmd.Name(),
	})
}

// CreatePizza handles POST /api/v1/pizzas - adds a pizza to the catalog.
func (s *Server) CreatePizza(ctx echo.Context) error {
	var body servers.NewPizza
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var sizeIDs []kernel.ID
	if body.PossibleSizes != nil {
		sizeIDs = make([]kernel.ID, 0, len(*body.PossibleSizes))
		for _, raw := range *body.PossibleSizes {
			sizeID, err := kernel.NewID(raw)
			if err != nil {
				return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("possible_sizes", err))
			}
			sizeIDs = append(sizeIDs, sizeID)
		}
	}

	cmd, err := commands.NewCreatePizzaCommand(body.Title, sizeIDs)
	if err != nil {
		return renderError(ctx, err)
	}

	pizza, err := s.createPizzaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	sizes := make([]servers.Size, len(pizza.PossibleSizes()))
	for i, size := range pizza.PossibleSizes() {
		sizes[i] = servers.Size{Id: size.ID(), Name: size.Name()}
	}

	return ctx.JSON(http.StatusCreated, servers.Pizza{
		Id:            pizza.ID(),
		Title:         pizza.Title(),
		PossibleSizes: sizes,
	})
}

// DeletePizza handles DELETE /api/v1/pizzas/{pizza_id} - removes a pizza
// that no order line item references.
func (s *Server) DeletePizza(ctx echo.Context, pizzaID int64) error {
	id, err := kernel.NewID(pizzaID)
	if err != nil {
		return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("pizza_id", err))
	}

	cmd, err := commands.NewDeletePizzaCommand(id)
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deletePizzaHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondWithOrder re-reads the order through the query side so responses
// always carry the denormalized customer and catalog names.
func (s *Server) respondWithOrder(ctx echo.Context, orderID int64, status int) error {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return renderError(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return renderError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(status, toWireOrder(o))
}

// orderCommandArgs converts an order request body into the command arguments
// shared by create and update.
func orderCommandArgs(body servers.NewOrder) (kernel.ID, order.Status, []order.LineItemInput, error) {
	customerID, err := kernel.NewID(body.CustomerId)
	if err != nil {
		return kernel.ID{}, "", nil, errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}

	if body.Status == "" {
		return kernel.ID{}, "", nil, errs.NewValueIsRequiredError("status")
	}
	status := order.Status(body.Status)

	items := make([]order.LineItemInput, 0, len(body.OrderedpizzaSet))
	for _, item := range body.OrderedpizzaSet {
		input, err := toLineItemInput(item)
		if err != nil {
			return kernel.ID{}, "", nil, err
		}
		items = append(items, input)
	}

	return customerID, status, items, nil
}

func toLineItemInput(item servers.NewOrderedPizza) (order.LineItemInput, error) {
	var itemID *kernel.ID
	if item.Id != nil {
		id, err := kernel.NewID(*item.Id)
		if err != nil {
			return order.LineItemInput{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
		itemID = &id
	}

	pizzaID, err := kernel.NewID(item.PizzaId)
	if err != nil {
		return order.LineItemInput{}, errs.NewValueIsRequiredErrorWithCause("pizza_id", err)
	}

	sizeID, err := kernel.NewID(item.SizeId)
	if err != nil {
		return order.LineItemInput{}, errs.NewValueIsRequiredErrorWithCause("size_id", err)
	}

	return order.NewLineItemInput(itemID, pizzaID, sizeID, item.Quantity)
}

func toWireOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderedPizza, len(o.Items))
	for i, item := range o.Items {
		pizzaTitle := item.PizzaTitle
		sizeName := item.SizeName
		items[i] = servers.OrderedPizza{
			Id:         item.ID,
			PizzaId:    item.PizzaID,
			PizzaTitle: &pizzaTitle,
			SizeId:     item.SizeID,
			SizeName:   &sizeName,
			Quantity:   item.Quantity,
		}
	}

	customerName := o.CustomerName
	customerPhone := o.CustomerPhone

	return servers.Order{
		Id:                  o.ID,
		CustomerId:          o.CustomerID,
		CustomerName:        &customerName,
		CustomerPhoneNumber: &customerPhone,
		Status:              servers.OrderStatus(o.Status),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
		OrderedpizzaSet:     items,
	}
}

// renderError maps application errors onto HTTP responses. Immutability
// violations surface their message to the client verbatim.
func renderError(ctx echo.Context, err error) error {
	var immutable *errs.ObjectIsImmutableError
	if errors.As(err, &immutable) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: immutable.Message,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
