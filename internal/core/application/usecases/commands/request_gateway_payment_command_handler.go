package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// GatewayPayment is what a shopper needs to open the provider's payment
// dialog: the provider-side order handle and the amount it was opened for.
type GatewayPayment struct {
	GatewayOrderID string
	Amount         kernel.Money
}

// RequestGatewayPaymentCommandHandler opens provider-side payments for
// unpaid gateway orders.
//
// The provider call happens between two short transactions rather than
// inside one: holding a row lock across an external HTTP call would stall
// concurrent readers for the provider's full latency. The optimistic
// version check on the second write catches anything that changed the
// order in between.
type RequestGatewayPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewRequestGatewayPaymentCommandHandler creates a handler for gateway payment requests.
func NewRequestGatewayPaymentCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) RequestGatewayPaymentCommandHandler {
	return RequestGatewayPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle opens a payment for the order and returns the provider's order
// handle together with the amount. Only unpaid razorpay orders reach the
// provider: cash-on-delivery orders are rejected outright and a paid order
// surfaces ErrOrderAlreadyPaid before any external call. Re-requesting an
// unpaid order that already has a handle returns the existing one, so a
// shopper who abandoned the payment dialog can resume it. Orders owned by
// someone else surface as ObjectNotFoundError.
func (h RequestGatewayPaymentCommandHandler) Handle(ctx context.Context, cmd RequestGatewayPaymentCommand) (GatewayPayment, error) {
	if err := cmd.Validate(); err != nil {
		return GatewayPayment{}, err
	}

	aggregate, err := h.loadOrder(ctx, cmd)
	if err != nil {
		return GatewayPayment{}, err
	}

	if aggregate.GatewayOrderID() != "" {
		return GatewayPayment{
			GatewayOrderID: aggregate.GatewayOrderID(),
			Amount:         aggregate.Total(),
		}, nil
	}

	gatewayOrderID, err := h.gateway.CreateOrder(ctx, aggregate.ID(), aggregate.Total())
	if err != nil {
		return GatewayPayment{}, err
	}

	if err = h.attachGatewayOrder(ctx, cmd, gatewayOrderID); err != nil {
		return GatewayPayment{}, err
	}

	return GatewayPayment{
		GatewayOrderID: gatewayOrderID,
		Amount:         aggregate.Total(),
	}, nil
}

func (h RequestGatewayPaymentCommandHandler) loadOrder(ctx context.Context, cmd RequestGatewayPaymentCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}
	if aggregate.PaymentMethod() != order.PaymentMethodRazorpay {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment method",
			errors.New("only razorpay orders open gateway payments"))
	}
	if aggregate.IsPaid() {
		return nil, errs.ErrOrderAlreadyPaid
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h RequestGatewayPaymentCommandHandler) attachGatewayOrder(
	ctx context.Context,
	cmd RequestGatewayPaymentCommand,
	gatewayOrderID string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachGatewayOrder(gatewayOrderID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
