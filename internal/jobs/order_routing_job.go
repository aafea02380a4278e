// Package jobs contains the scheduled background work of the service.
package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// OrderRoutingJob drains the unrouted order queue on a schedule, running the
// automated routing pipeline (warehouse selection and driver assignment) for each
// order. Orders that resolve to manual assignment stay in the queue for operators.
type OrderRoutingJob struct {
	unroutedOrders queries.GetUnroutedOrdersQueryHandler
	routeOrder     commands.RouteOrderCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewOrderRoutingJob creates a new job for automated order routing.
func NewOrderRoutingJob(
	unroutedOrders queries.GetUnroutedOrdersQueryHandler,
	routeOrder commands.RouteOrderCommandHandler,
	logger *slog.Logger,
) *OrderRoutingJob {
	return &OrderRoutingJob{
		unroutedOrders: unroutedOrders,
		routeOrder:     routeOrder,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "order_routing_job"),
	}
}

// Start begins the routing job, running every ten seconds.
func (j *OrderRoutingJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order routing job started (running every ten seconds)")
	return nil
}

// Stop stops the routing job.
func (j *OrderRoutingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order routing job stopped")
}

func (j *OrderRoutingJob) run() {
	ctx := context.Background()

	unrouted, err := j.unroutedOrders.Handle(ctx, queries.NewGetUnroutedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list unrouted orders", "error", err)
		return
	}

	for _, pending := range unrouted {
		orderID, idErr := kernel.OrderIDFromString(pending.ID)
		if idErr != nil {
			j.logger.ErrorContext(ctx, "Skipping order with malformed id",
				"order_id", pending.ID, "error", idErr)
			continue
		}

		cmd, cmdErr := commands.NewRouteOrderCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build routing command",
				"order_id", pending.ID, "error", cmdErr)
			continue
		}

		result, routeErr := j.routeOrder.Handle(ctx, cmd)
		if routeErr != nil {
			// An order deleted between the listing and the routing run is not a failure.
			if !errors.Is(routeErr, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Order routing failed",
					"order_id", pending.ID, "error", routeErr)
			}
			continue
		}

		if result.Routing.IsManual() {
			j.logger.WarnContext(ctx, "Order requires manual routing",
				"order_id", pending.ID, "industry", result.Industry)
		}
	}
}
