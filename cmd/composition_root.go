package cmd

import (
	"dispatch/internal/adapters/out/eventbus"
	"dispatch/internal/adapters/out/memory/orderrepo"
	"dispatch/internal/adapters/out/memory/userrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// CompositionRoot owns the process-wide singletons: the in-memory stores and
// the event bus. Handlers are cheap value types created on demand from them.
type CompositionRoot struct {
	orders *orderrepo.Repository
	users  *userrepo.Repository
	bus    *eventbus.Bus
}

// NewCompositionRoot builds the object graph for the process.
func NewCompositionRoot(configs Config, log *zap.SugaredLogger) CompositionRoot {
	return CompositionRoot{
		orders: orderrepo.NewRepository(),
		users:  userrepo.NewRepository(),
		bus:    eventbus.NewBus(configs.EventBufferSize, log),
	}
}

// EventBus exposes the bus for the websocket handler.
func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.users)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders, c.bus)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orders, c.users, c.bus)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.bus)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.orders, c.bus)
}

func (c *CompositionRoot) CreateUpdateRiderLocationCommandHandler() commands.UpdateRiderLocationCommandHandler {
	return commands.NewUpdateRiderLocationCommandHandler(c.orders, c.bus)
}

func (c *CompositionRoot) CreateLoginUserQueryHandler() queries.LoginUserQueryHandler {
	return queries.NewLoginUserQueryHandler(c.users)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.orders)
}
