package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "orderlifecycle/internal/adapters/in/http"
	casbinadapter "orderlifecycle/internal/adapters/out/casbin"
	"orderlifecycle/internal/adapters/out/postgres"
	"orderlifecycle/internal/adapters/out/rabbitmq"
	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/services"
	"orderlifecycle/internal/core/ports"
	"orderlifecycle/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     *services.TransitionPolicy
	publisher  *rabbitmq.StatusPublisher
	logger     *slog.Logger
}

// NewCompositionRoot builds the transition policy and, when RABBITMQ_URL is set,
// connects the status publisher.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	authorizer, err := casbinadapter.NewEventAuthorizer(order.DefaultAuthorizationMatrix())
	if err != nil {
		return nil, fmt.Errorf("build authorizer: %w", err)
	}

	policy, err := services.NewTransitionPolicy(order.DefaultTopology(), authorizer)
	if err != nil {
		return nil, fmt.Errorf("build transition policy: %w", err)
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		logger:     logger,
	}

	if config.RabbitMQURL != "" {
		root.publisher, err = rabbitmq.Dial(config.RabbitMQURL)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
	}

	return root, nil
}

// Close releases the publisher connection.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) statusPublisher() ports.StatusPublisher {
	// A typed nil would look configured to the handler.
	if c.publisher == nil {
		return nil
	}
	return c.publisher
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyOrderEventCommandHandler() commands.ApplyOrderEventCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOrderEventCommandHandler(f, c.policy, c.statusPublisher(), c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryAgentCommandHandler() commands.AssignDeliveryAgentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryAgentCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateArchiveSettledOrdersCommandHandler() commands.ArchiveSettledOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveSettledOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyForPickupOrdersQueryHandler() queries.GetReadyForPickupOrdersQueryHandler {
	return queries.NewGetReadyForPickupOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	applyEvent := c.CreateApplyOrderEventCommandHandler()
	assignAgent := c.CreateAssignDeliveryAgentCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:             &createOrder,
		ApplyOrderEvent:         &applyEvent,
		AssignDeliveryAgent:     &assignAgent,
		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetOrderHistory:         c.CreateGetOrderHistoryQueryHandler(),
		GetReadyForPickupOrders: c.CreateGetReadyForPickupOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	archive := c.CreateArchiveSettledOrdersCommandHandler()
	return jobs.NewJobManager(&archive, c.config.ArchiveSchedule, c.config.ArchiveRetention, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
