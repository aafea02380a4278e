package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRoutingJob *OrderRoutingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up job execution.
func NewJobManager(
	unroutedOrders queries.GetUnroutedOrdersQueryHandler,
	routeOrder commands.RouteOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRoutingJob: NewOrderRoutingJob(unroutedOrders, routeOrder, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRoutingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order routing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRoutingJob.Stop()
}
