package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles workflow-checked status changes.
// Every transition is validated against the order type's workflow; violations are
// rejected with a WorkflowViolationError naming the current status, the attempted
// status, and the vertical.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	workflow   services.StatusWorkflowEngine
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	workflow services.StatusWorkflowEngine,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   workflow,
	}
}

// Handle processes the status update command.
// Loads the order, checks the transition against its workflow, applies the new
// status, and persists the change transactionally.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if !h.workflow.IsValidTransition(o.Status(), cmd.NewStatus(), o.OrderType()) {
		return errs.NewWorkflowViolationError(
			string(o.Status()),
			string(cmd.NewStatus()),
			o.IndustryCategory().DisplayName(),
		)
	}

	if err = o.ApplyStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
