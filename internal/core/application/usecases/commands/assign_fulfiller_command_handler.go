package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
)

var (
	// ErrAssignmentNotAllowed is returned when a non-admin attempts to
	// assign fulfillers.
	ErrAssignmentNotAllowed = errors.New("only admins may assign fulfillers")

	// ErrFulfillerRoleMismatch is returned when the assignee exists but is
	// not a delivery agent.
	ErrFulfillerRoleMismatch = errors.New("assignee is not a delivery agent")
)

// AssignFulfillerCommandHandler routes orders to delivery agents. It
// verifies the assignee holds the delivery role and writes the order in
// the same transaction.
type AssignFulfillerCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAssignFulfillerCommandHandler creates a handler for fulfiller assignment.
func NewAssignFulfillerCommandHandler(uowFactory FulfillmentUoWFactory) AssignFulfillerCommandHandler {
	return AssignFulfillerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the agent. Reassignment of an active order is allowed and
// simply replaces the previous agent; terminal orders reject assignment.
func (h AssignFulfillerCommandHandler) Handle(ctx context.Context, cmd AssignFulfillerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.Role() != kernel.RoleAdmin {
		return ErrAssignmentNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignee, err := uow.AccountRepository().Get(ctx, cmd.FulfillerID())
	if err != nil {
		return err
	}
	if assignee.Role() != kernel.RoleDelivery {
		return ErrFulfillerRoleMismatch
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignFulfiller(cmd.FulfillerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
