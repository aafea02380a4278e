// Package http exposes the order management API over echo. Handlers translate
// HTTP requests into commands and queries and map domain errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	routeOrderHandler   commands.RouteOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getUnroutedOrdersHandler queries.GetUnroutedOrdersQueryHandler

	// Domain services for the synchronous validation endpoint.
	validator  services.IndustryValidator
	processors *services.ProcessorFactory
	workflow   services.StatusWorkflowEngine
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	routeOrderHandler commands.RouteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnroutedOrdersHandler queries.GetUnroutedOrdersQueryHandler,
	validator services.IndustryValidator,
	processors *services.ProcessorFactory,
	workflow services.StatusWorkflowEngine,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		routeOrderHandler:        routeOrderHandler,
		getOrderHandler:          getOrderHandler,
		getUnroutedOrdersHandler: getUnroutedOrdersHandler,
		validator:                validator,
		processors:               processors,
		workflow:                 workflow,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/validate", s.ValidateOrder)
	api.GET("/orders/unrouted", s.GetUnroutedOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/route", s.RouteOrder)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	data, err := req.industryData()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items, err := req.items()
	if err != nil {
		return badRequest(ctx, "Invalid items: "+err.Error())
	}

	orderID := kernel.NewOrderID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerID,
		order.Type(req.OrderType),
		order.Source(req.OrderSource),
		items,
		req.DeliveryAddress,
		data,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd = cmd.WithDeliveryInstructions(req.DeliveryInstructions).
		WithNotes(req.Notes).
		WithTags(req.Tags)
	if req.RequestedDeliveryDate != nil {
		cmd = cmd.WithRequestedDeliveryDate(*req.RequestedDeliveryDate)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	validation := s.validator.Validate(cmd.OrderType(), data)

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:          orderID.String(),
		Status:           string(s.workflow.GetInitialStatus(cmd.OrderType())),
		IndustryCategory: string(order.CategoryFor(cmd.OrderType())),
		Warnings:         validation.Warnings,
	})
}

// ValidateOrder handles POST /api/v1/orders/validate - runs the vertical's deep
// payload validation without creating anything.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	var req ValidateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType := order.Type(req.OrderType)
	if err := orderType.Validate(); err != nil {
		return badRequest(ctx, "Invalid order type: "+err.Error())
	}

	data, err := req.industryData()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	processor := s.processors.GetProcessorForOrderType(orderType)
	result := processor.Validate(data)

	return ctx.JSON(http.StatusOK, ValidateOrderResponse{
		Valid:          result.IsValid(),
		Errors:         emptyIfNil(result.Errors),
		Warnings:       emptyIfNil(result.Warnings),
		RequiredFields: s.validator.RequiredFields(orderType),
	})
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetUnroutedOrders handles GET /api/v1/orders/unrouted - lists orders awaiting
// warehouse routing.
func (s *Server) GetUnroutedOrders(ctx echo.Context) error {
	query := queries.NewGetUnroutedOrdersQuery()

	orders, err := s.getUnroutedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unrouted orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderID/status - moves an order
// along its workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - cancels an order that
// has not progressed past processing.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RouteOrder handles POST /api/v1/orders/:orderID/route - runs automated
// warehouse routing and driver assignment.
func (s *Server) RouteOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRouteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.routeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapDomainError translates domain errors onto HTTP status codes: not-found maps
// to 404, workflow violations to 409, validation failures to 400, everything else
// to 500.
func mapDomainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var violation *errs.WorkflowViolationError
	if errors.As(err, &violation) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
