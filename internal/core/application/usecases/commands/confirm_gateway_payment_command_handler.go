package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/errs"
)

// ConfirmGatewayPaymentCommandHandler processes signed payment callbacks.
// It verifies the signature against the merchant secret before the order is
// marked paid; a mismatch changes nothing.
type ConfirmGatewayPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	verifier   *services.PaymentVerifier
}

// NewConfirmGatewayPaymentCommandHandler creates a handler for payment callbacks.
func NewConfirmGatewayPaymentCommandHandler(uowFactory OrderUoWFactory, verifier *services.PaymentVerifier) ConfirmGatewayPaymentCommandHandler {
	return ConfirmGatewayPaymentCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle verifies the callback and marks the order paid. A redelivered
// callback for an already paid order succeeds without changes, so provider
// retries stay idempotent. SignatureInvalidError is returned before any
// state is touched.
func (h ConfirmGatewayPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmGatewayPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByGatewayOrderID(ctx, cmd.GatewayOrderID())
	if err != nil {
		return err
	}

	if err = h.verifier.Verify(aggregate, cmd.PaymentID(), cmd.Signature()); err != nil {
		return err
	}

	if err = aggregate.ConfirmGatewayPayment(cmd.PaymentID(), cmd.Signature()); err != nil {
		if errors.Is(err, errs.ErrOrderAlreadyPaid) && aggregate.GatewayPaymentID() == cmd.PaymentID() {
			return nil
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
