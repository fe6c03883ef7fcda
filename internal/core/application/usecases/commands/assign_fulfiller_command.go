package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrAssignFulfillerCommandIsNotConstructed = errors.New(
	"AssignFulfillerCommand must be created via NewAssignFulfillerCommand constructor",
)

// AssignFulfillerCommand assigns a delivery agent to an order. Admin-only;
// assignment routes the order into the agent's work queue without changing
// its status.
type AssignFulfillerCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	fulfillerID kernel.UUID
	role        kernel.Role

	guard guard.ConstructorGuard
}

// NewAssignFulfillerCommand creates an assignment command.
func NewAssignFulfillerCommand(orderID, fulfillerID kernel.UUID, role kernel.Role) (AssignFulfillerCommand, error) {
	command := AssignFulfillerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setFulfillerID(fulfillerID),
		command.setRole(role),
	); err != nil {
		return AssignFulfillerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignFulfillerCommand) Validate() error {
	return c.guard.Validate(ErrAssignFulfillerCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignFulfillerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillerID returns the delivery agent to assign.
func (c AssignFulfillerCommand) FulfillerID() kernel.UUID {
	return c.fulfillerID
}

// Role returns the acting role.
func (c AssignFulfillerCommand) Role() kernel.Role {
	return c.role
}

func (c *AssignFulfillerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignFulfillerCommand) setFulfillerID(fulfillerID kernel.UUID) error {
	if err := fulfillerID.Validate(); err != nil {
		return err
	}

	c.fulfillerID = fulfillerID
	return nil
}

func (c *AssignFulfillerCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
