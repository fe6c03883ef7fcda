package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrConfirmGatewayPaymentCommandIsNotConstructed = errors.New(
		"ConfirmGatewayPaymentCommand must be created via NewConfirmGatewayPaymentCommand constructor",
	)
	ErrGatewayOrderIDIsRequired = errors.New("gateway order id is required")
	ErrPaymentIDIsRequired      = errors.New("payment id is required")
	ErrSignatureIsRequired      = errors.New("signature is required")
)

// ConfirmGatewayPaymentCommand carries a payment callback from the
// provider: the gateway order handle, the payment identifier, and the
// provider's signature over both.
type ConfirmGatewayPaymentCommand struct { //nolint:recvcheck //using for validation
	gatewayOrderID string
	paymentID      string
	signature      string

	guard guard.ConstructorGuard
}

// NewConfirmGatewayPaymentCommand creates a payment callback command.
func NewConfirmGatewayPaymentCommand(gatewayOrderID, paymentID, signature string) (ConfirmGatewayPaymentCommand, error) {
	command := ConfirmGatewayPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setGatewayOrderID(gatewayOrderID),
		command.setPaymentID(paymentID),
		command.setSignature(signature),
	); err != nil {
		return ConfirmGatewayPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmGatewayPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmGatewayPaymentCommandIsNotConstructed)
}

// GatewayOrderID returns the provider's order handle.
func (c ConfirmGatewayPaymentCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

// PaymentID returns the provider's payment identifier.
func (c ConfirmGatewayPaymentCommand) PaymentID() string {
	return c.paymentID
}

// Signature returns the provider's callback signature.
func (c ConfirmGatewayPaymentCommand) Signature() string {
	return c.signature
}

func (c *ConfirmGatewayPaymentCommand) setGatewayOrderID(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return ErrGatewayOrderIDIsRequired
	}

	c.gatewayOrderID = gatewayOrderID
	return nil
}

func (c *ConfirmGatewayPaymentCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return ErrPaymentIDIsRequired
	}

	c.paymentID = paymentID
	return nil
}

func (c *ConfirmGatewayPaymentCommand) setSignature(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	c.signature = signature
	return nil
}
