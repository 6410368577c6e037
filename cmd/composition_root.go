package cmd

import (
	"github.com/mantoshmedhansh-dot/lma/internal/adapters/out/postgres"
	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/lma/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the gorm connection into command and query
// handlers. Each handler sees only the narrow unit-of-work factory it
// declares; all of them are backed by the same GormUnitOfWorkFactory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

// StopUoWFactory is exported for the job manager, which shares the stop
// unit of work for its read-side sweep.
func (c *CompositionRoot) StopUoWFactory() commands.StopUoWFactory {
	return FuncStopUoWFactory(func() commands.StopUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReturnToHubCommandHandler() commands.ReturnToHubCommandHandler {
	return commands.NewReturnToHubCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.ImportUoWFactory = FuncImportUoWFactory(func() commands.ImportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoPlanRoutesCommandHandler() commands.AutoPlanRoutesCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoPlanRoutesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	return commands.NewAssignRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateDispatchRouteCommandHandler() commands.DispatchRouteCommandHandler {
	return commands.NewDispatchRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateArriveAtStopCommandHandler() commands.ArriveAtStopCommandHandler {
	return commands.NewArriveAtStopCommandHandler(c.StopUoWFactory())
}

func (c *CompositionRoot) CreateCompleteStopCommandHandler() commands.CompleteStopCommandHandler {
	return commands.NewCompleteStopCommandHandler(c.StopUoWFactory())
}

func (c *CompositionRoot) CreateSendOtpCommandHandler() commands.SendOtpCommandHandler {
	var f commands.OtpUoWFactory = FuncOtpUoWFactory(func() commands.OtpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOtpCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	var f commands.OtpUoWFactory = FuncOtpUoWFactory(func() commands.OtpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOtpCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordAttemptCommandHandler() commands.RecordAttemptCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordAttemptCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteDetailQueryHandler() queries.GetRouteDetailQueryHandler {
	return queries.NewGetRouteDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetImportBatchQueryHandler() queries.GetImportBatchQueryHandler {
	return queries.NewGetImportBatchQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncImportUoWFactory func() commands.ImportUoW

func (f FuncImportUoWFactory) Create() commands.ImportUoW {
	return f()
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncStopUoWFactory func() commands.StopUoW

func (f FuncStopUoWFactory) Create() commands.StopUoW {
	return f()
}

type FuncOtpUoWFactory func() commands.OtpUoW

func (f FuncOtpUoWFactory) Create() commands.OtpUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
