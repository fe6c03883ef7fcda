package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler moves orders along the fulfillment
// pipeline. The aggregate enforces the transition rules; the handler adds
// the visibility rule that a delivery agent may only touch orders assigned
// to them.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to the requested status. Orders not assigned
// to the acting agent surface as ObjectNotFoundError rather than a
// permission error. Re-delivering an already delivered order is a no-op.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Role() == kernel.RoleDelivery && !h.isAssignee(aggregate, cmd) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = aggregate.Advance(cmd.Role(), cmd.Target()); err != nil {
		if errors.Is(err, order.ErrAlreadyDelivered) {
			return nil
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AdvanceOrderStatusCommandHandler) isAssignee(aggregate *order.Order, cmd AdvanceOrderStatusCommand) bool {
	fulfillerID := aggregate.FulfillerID()
	return fulfillerID != nil && fulfillerID.IsEqual(cmd.ActorID())
}
