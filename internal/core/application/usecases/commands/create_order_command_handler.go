package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Validates the vertical payload against the order type, creates the aggregate,
// and runs the vertical's processor to enrich it before persisting.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator, processors)
//	cmd, _ := NewCreateOrderCommand(kernel.NewOrderID(), "CUST-42",
//	    order.TypeFoodDeliveryCustomer, order.SourceUberEats, items, address, payload)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.IndustryValidator
	processors *services.ProcessorFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.IndustryValidator,
	processors *services.ProcessorFactory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		processors: processors,
	}
}

// Handle processes the order intake command.
// Rejects orders whose vertical payload fails the order type's requirements, then
// creates the aggregate, applies vertical enrichment (priority escalation, initial
// workflow status, delivery estimate), and persists it transactionally.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	validation := h.validator.Validate(cmd.OrderType(), cmd.IndustryData())
	if !validation.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("industryData",
			errors.New(strings.Join(validation.Errors, "; ")))
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.OrderType(),
		cmd.OrderSource(),
		cmd.Items(),
		cmd.DeliveryAddress(),
		cmd.IndustryData(),
	)
	if err != nil {
		return err
	}

	if cmd.DeliveryInstructions() != "" {
		newOrder.SetDeliveryInstructions(cmd.DeliveryInstructions())
	}
	if cmd.RequestedDeliveryDate() != nil {
		newOrder.SetRequestedDeliveryDate(*cmd.RequestedDeliveryDate())
	}
	if cmd.Notes() != "" {
		newOrder.SetNotes(cmd.Notes())
	}
	for _, tag := range cmd.Tags() {
		newOrder.AddTag(tag)
	}

	processor := h.processors.GetProcessorForOrderType(cmd.OrderType())
	if err = processor.Process(newOrder); err != nil {
		return err
	}

	if newOrder.EstimatedDeliveryDate() == nil {
		fulfillment := processor.CalculateFulfillmentTime(newOrder)
		estimate := time.Now().UTC().Add(time.Duration(fulfillment) * time.Minute)
		newOrder.SetEstimatedDeliveryDate(estimate)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
