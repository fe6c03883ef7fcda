package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrRequestGatewayPaymentCommandIsNotConstructed = errors.New(
	"RequestGatewayPaymentCommand must be created via NewRequestGatewayPaymentCommand constructor",
)

// RequestGatewayPaymentCommand asks the payment provider to open a payment
// for an unpaid gateway order, on behalf of the customer who placed it.
type RequestGatewayPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestGatewayPaymentCommand creates a gateway payment request command.
func NewRequestGatewayPaymentCommand(orderID, customerID kernel.UUID) (RequestGatewayPaymentCommand, error) {
	command := RequestGatewayPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
	); err != nil {
		return RequestGatewayPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestGatewayPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestGatewayPaymentCommandIsNotConstructed)
}

// OrderID returns the order to open a payment for.
func (c RequestGatewayPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the requesting customer.
func (c RequestGatewayPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *RequestGatewayPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestGatewayPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
