package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// one in-memory store and one unit of work factory over it.
type CompositionRoot struct {
	uowFactory     *memstore.UnitOfWorkFactory
	eventPublisher ports.EventPublisher
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		uowFactory:     memstore.NewUnitOfWorkFactory(memstore.NewStore()),
		eventPublisher: kafka.NewPublisher(config.KafkaBrokers, config.KafkaOrderEventsTopic, logger),
		metrics:        metrics.New(),
		logger:         logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.eventPublisher
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockProductCommandHandler() commands.RestockProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.eventPublisher)
}

func (c *CompositionRoot) CreateProcessNextOrderCommandHandler() commands.ProcessNextOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessNextOrderCommandHandler(f, c.eventPublisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.eventPublisher)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetBacklogSummaryQueryHandler() queries.GetBacklogSummaryQueryHandler {
	return queries.NewGetBacklogSummaryQueryHandler(c.uowFactory)
}

// CreateServer assembles the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateRegisterProductCommandHandler(),
		c.CreateRestockProductCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateProcessNextOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetCustomerQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetBacklogSummaryQueryHandler(),
		c.metrics,
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
