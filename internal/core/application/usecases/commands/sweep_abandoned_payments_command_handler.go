package commands

import (
	"context"
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// SweepAbandonedPaymentsCommandHandler cancels unpaid gateway orders older
// than the configured time-to-live. Each order is cancelled in its own
// transaction so one contended row cannot block the whole sweep; orders a
// concurrent writer touched are left for the next run.
type SweepAbandonedPaymentsCommandHandler struct {
	uowFactory CheckoutUoWFactory
	ttl        time.Duration
}

// NewSweepAbandonedPaymentsCommandHandler creates a sweep handler with the
// given unpaid-order time-to-live.
func NewSweepAbandonedPaymentsCommandHandler(uowFactory CheckoutUoWFactory, ttl time.Duration) SweepAbandonedPaymentsCommandHandler {
	return SweepAbandonedPaymentsCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
	}
}

// Handle sweeps expired unpaid gateway orders and returns how many were
// cancelled.
func (h SweepAbandonedPaymentsCommandHandler) Handle(ctx context.Context, cmd SweepAbandonedPaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-h.ttl)

	expired, err := h.listExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, orderID := range expired {
		err := h.cancelOne(ctx, orderID)
		switch {
		case errors.Is(err, errs.ErrVersionConflict),
			errors.Is(err, errs.ErrIllegalTransition),
			errors.Is(err, errs.ErrObjectNotFound),
			errors.Is(err, errs.ErrOrderAlreadyPaid):
			// someone got to the order first, skip it
			continue
		case err != nil:
			return cancelled, err
		default:
			cancelled++
		}
	}

	return cancelled, nil
}

func (h SweepAbandonedPaymentsCommandHandler) listExpired(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetUnpaidGatewayCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, aggregate := range orders {
		ids = append(ids, aggregate.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

func (h SweepAbandonedPaymentsCommandHandler) cancelOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if aggregate.IsPaid() {
		return errs.ErrOrderAlreadyPaid
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
