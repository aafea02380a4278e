package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/staticdata"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"
)

// CompositionRoot wires adapters, domain services, and use cases together.
// Handlers are created per call so each request gets a fresh unit of work.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory

	warehouses *staticdata.WarehouseProvider
	drivers    *staticdata.DriverProvider

	validator  services.IndustryValidator
	processors *services.ProcessorFactory
	workflow   services.StatusWorkflowEngine
	router     services.WarehouseRouter
	assigner   services.DriverAssigner
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		warehouses: staticdata.NewWarehouseProvider(),
		drivers:    staticdata.NewDriverProvider(),
		validator:  services.NewIndustryValidator(),
		processors: services.NewProcessorFactory(logger),
		workflow:   services.NewStatusWorkflowEngine(),
		router:     services.NewWarehouseRouter(logger),
		assigner:   services.NewDriverAssigner(logger),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.validator, c.processors)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.workflow)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRouteOrderCommandHandler() commands.RouteOrderCommandHandler {
	return commands.NewRouteOrderCommandHandler(
		c.orderUoWFactory(),
		c.warehouses,
		c.drivers,
		c.router,
		c.assigner,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnroutedOrdersQueryHandler() queries.GetUnroutedOrdersQueryHandler {
	return queries.NewGetUnroutedOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the HTTP server with all its handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRouteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUnroutedOrdersQueryHandler(),
		c.validator,
		c.processors,
		c.workflow,
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetUnroutedOrdersQueryHandler(),
		c.CreateRouteOrderCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
