package cmd

import (
	"time"

	httpin "pharmacy/internal/adapters/in/http"
	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/adapters/out/razorpay"
	"pharmacy/internal/adapters/out/session"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. The cart store is
// a process-wide singleton; everything else is cheap to construct per
// request.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	gateway    ports.PaymentGateway
	verifier   *services.PaymentVerifier
	paymentTTL time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	gateway, err := razorpay.NewClient(config.RazorpayKeyID, config.RazorpayKeySecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	verifier, err := services.NewPaymentVerifier(config.RazorpayCallbackSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	paymentTTL, err := time.ParseDuration(config.AbandonedPaymentTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  session.NewInMemoryCartStore(),
		gateway:    gateway,
		verifier:   verifier,
		paymentTTL: paymentTTL,
	}, nil
}

// CreateServerHandlers bundles every HTTP-facing handler.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		ChangeCartItem:        c.CreateChangeCartItemCommandHandler(),
		SetCartItemQuantity:   c.CreateSetCartItemQuantityCommandHandler(),
		RemoveCartItem:        c.CreateRemoveCartItemCommandHandler(),
		ClearCart:             c.CreateClearCartCommandHandler(),
		Checkout:              c.CreateCheckoutCommandHandler(),
		RequestGatewayPayment: c.CreateRequestGatewayPaymentCommandHandler(),
		ConfirmGatewayPayment: c.CreateConfirmGatewayPaymentCommandHandler(),
		AdvanceOrderStatus:    c.CreateAdvanceOrderStatusCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		AssignFulfiller:       c.CreateAssignFulfillerCommandHandler(),
		RegisterAccount:       c.CreateRegisterAccountCommandHandler(),
		ProvisionProfile:      c.CreateProvisionProfileCommandHandler(),
		GetActiveMedicines:    c.CreateGetActiveMedicinesQueryHandler(),
		GetCart:               c.CreateGetCartQueryHandler(),
		GetCustomerOrders:     c.CreateGetCustomerOrdersQueryHandler(),
		GetAssignedOrders:     c.CreateGetAssignedOrdersQueryHandler(),
		GetDashboardStats:     c.CreateGetDashboardStatsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateChangeCartItemCommandHandler() commands.ChangeCartItemCommandHandler {
	return commands.NewChangeCartItemCommandHandler(c.cartStore, c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateSetCartItemQuantityCommandHandler() commands.SetCartItemQuantityCommandHandler {
	return commands.NewSetCartItemQuantityCommandHandler(c.cartStore, c.medicineUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.cartStore, c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateRequestGatewayPaymentCommandHandler() commands.RequestGatewayPaymentCommandHandler {
	return commands.NewRequestGatewayPaymentCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateConfirmGatewayPaymentCommandHandler() commands.ConfirmGatewayPaymentCommandHandler {
	return commands.NewConfirmGatewayPaymentCommandHandler(c.orderUoWFactory(), c.verifier)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateAssignFulfillerCommandHandler() commands.AssignFulfillerCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignFulfillerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateProvisionProfileCommandHandler() commands.ProvisionProfileCommandHandler {
	return commands.NewProvisionProfileCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateSweepAbandonedPaymentsCommandHandler() commands.SweepAbandonedPaymentsCommandHandler {
	return commands.NewSweepAbandonedPaymentsCommandHandler(c.checkoutUoWFactory(), c.paymentTTL)
}

func (c *CompositionRoot) CreateGetActiveMedicinesQueryHandler() queries.GetActiveMedicinesQueryHandler {
	return queries.NewGetActiveMedicinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore, c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) medicineUoWFactory() commands.MedicineUoWFactory {
	return FuncMedicineUoWFactory(func() commands.MedicineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncMedicineUoWFactory func() commands.MedicineUoW

func (f FuncMedicineUoWFactory) Create() commands.MedicineUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
