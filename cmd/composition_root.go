package cmd

import (
	"log/slog"

	"docdispatch/internal/adapters/out/postgres"
	"docdispatch/internal/core/application/usecases/commands"
	"docdispatch/internal/core/application/usecases/queries"
	"docdispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	notifier     ports.Notifier
	mediaStorage ports.MediaStorage
	logger       *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	mediaStorage ports.MediaStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:     notifier,
		mediaStorage: mediaStorage,
		logger:       logger,
	}
}

func (c *CompositionRoot) MediaStorage() ports.MediaStorage {
	return c.mediaStorage
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) delegateUoWFactory() commands.DelegateUoWFactory {
	return FuncDelegateUoWFactory(func() commands.DelegateUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(
		c.paymentUoWFactory(), c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateDelegateCommandHandler() commands.CreateDelegateCommandHandler {
	return commands.NewCreateDelegateCommandHandler(c.delegateUoWFactory())
}

func (c *CompositionRoot) CreateAssignDelegateCommandHandler() commands.AssignDelegateCommandHandler {
	return commands.NewAssignDelegateCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDispatchPendingOrdersCommandHandler() commands.DispatchPendingOrdersCommandHandler {
	return commands.NewDispatchPendingOrdersCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateStartProcessingCommandHandler() commands.StartProcessingCommandHandler {
	return commands.NewStartProcessingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProvideDeliveryInfoCommandHandler() commands.ProvideDeliveryInfoCommandHandler {
	return commands.NewProvideDeliveryInfoCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateHandOffCommandHandler() commands.HandOffCommandHandler {
	return commands.NewHandOffCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateForceAssignCommandHandler() commands.ForceAssignCommandHandler {
	return commands.NewForceAssignCommandHandler(c.dispatchUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateForceAdvanceCommandHandler() commands.ForceAdvanceCommandHandler {
	return commands.NewForceAdvanceCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateExpireInvoicesCommandHandler() commands.ExpireInvoicesCommandHandler {
	return commands.NewExpireInvoicesCommandHandler(c.invoiceUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDelegateBoardQueryHandler() queries.GetDelegateBoardQueryHandler {
	return queries.NewGetDelegateBoardQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncDelegateUoWFactory func() commands.DelegateUoW

func (f FuncDelegateUoWFactory) Create() commands.DelegateUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
