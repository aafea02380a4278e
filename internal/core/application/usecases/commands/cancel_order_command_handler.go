package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the quick cancellation path. Orders can only be
// cancelled this way while pending, confirmed, or processing; later cancellations
// must go through the workflow-checked status update.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation command.
// Rejects orders that have progressed past the cancellable statuses, otherwise
// moves the order to cancelled and records the reason.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.CanBeCancelled() {
		return errs.NewWorkflowViolationError(
			string(o.Status()),
			string(order.StatusCancelled),
			o.IndustryCategory().DisplayName(),
		)
	}

	if err = o.ApplyStatus(order.StatusCancelled); err != nil {
		return err
	}
	if cmd.Reason() != "" {
		o.SetNotes(fmt.Sprintf("Cancelled: %s", cmd.Reason()))
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
