package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// AutomationStep records one stage of automated order processing and its outcome.
type AutomationStep struct {
	Step   string `json:"step"`
	Status string `json:"status"`
	Result string `json:"result"`
}

// RouteOrderResult reports the outcome of automated routing: the warehouse
// decision, the driver assignment when one happened, and the per-step record with
// the share of steps that completed.
type RouteOrderResult struct {
	OrderID        string                     `json:"order_id"`
	Industry       string                     `json:"industry"`
	Routing        services.RoutingDecision   `json:"warehouse"`
	Driver         *services.DriverAssignment `json:"driver,omitempty"`
	Steps          []AutomationStep           `json:"automation_steps"`
	AutomationRate float64                    `json:"automation_rate"`
}

// RouteOrderCommandHandler runs the automated routing pipeline for one order:
// select a warehouse by industry rules, then assign a driver from that warehouse's
// pool. A manual-assignment routing decision skips driver assignment and leaves
// the order unrouted for an operator.
type RouteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	warehouses ports.WarehouseProvider
	drivers    ports.DriverProvider
	router     services.WarehouseRouter
	assigner   services.DriverAssigner
}

// NewRouteOrderCommandHandler creates a handler for automated order routing.
func NewRouteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	warehouses ports.WarehouseProvider,
	drivers ports.DriverProvider,
	router services.WarehouseRouter,
	assigner services.DriverAssigner,
) RouteOrderCommandHandler {
	return RouteOrderCommandHandler{
		uowFactory: uowFactory,
		warehouses: warehouses,
		drivers:    drivers,
		router:     router,
		assigner:   assigner,
	}
}

// Handle processes the routing command and returns the automation record.
func (h *RouteOrderCommandHandler) Handle(ctx context.Context, cmd RouteOrderCommand) (RouteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return RouteOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RouteOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return RouteOrderResult{}, err
	}

	result := RouteOrderResult{
		OrderID:  o.ID().String(),
		Industry: o.IndustryCategory().DisplayName(),
	}

	available, err := h.warehouses.GetAvailableWarehouses(ctx)
	if err != nil {
		return RouteOrderResult{}, err
	}

	result.Routing = h.router.Route(o, available)
	result.Steps = append(result.Steps, AutomationStep{
		Step:   "warehouse_routing",
		Status: "completed",
		Result: result.Routing.Reason,
	})

	if !result.Routing.IsManual() {
		if err = o.AssignWarehouse(result.Routing.WarehouseID); err != nil {
			return RouteOrderResult{}, err
		}

		candidates, aErr := h.drivers.GetAvailableDrivers(ctx, result.Routing.WarehouseID)
		if aErr != nil {
			return RouteOrderResult{}, aErr
		}

		assignment := h.assigner.Assign(o, candidates)
		result.Driver = &assignment
		result.Steps = append(result.Steps, AutomationStep{
			Step:   "driver_assignment",
			Status: "completed",
			Result: assignment.Reason,
		})

		if assignment.IsAssigned() {
			if err = o.AssignDriver(assignment.DriverID); err != nil {
				return RouteOrderResult{}, err
			}
		}
	}

	completed := 0
	for _, step := range result.Steps {
		if step.Status == "completed" {
			completed++
		}
	}
	if len(result.Steps) > 0 {
		result.AutomationRate = float64(completed) / float64(len(result.Steps)) * 100
	}

	if err = repo.Update(ctx, o); err != nil {
		return RouteOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RouteOrderResult{}, err
	}

	return result, nil
}
