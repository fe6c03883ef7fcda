package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to materialize the session cart into
// an order: snapshot prices, reserve stock, and persist the order, all in
// one transaction.
//
// Example:
//
//	shipping, err := order.NewShippingInfo("Priya Sharma", "+91 98x", "12 MG Road")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), sessionID, customerID, shipping, order.PaymentMethodCod)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var stockErr *errs.InsufficientStockError
//	    if errors.As(err, &stockErr) {
//	        // nothing was reserved, cart is intact
//	    }
//	    return err
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	sessionID     string
	customerID    kernel.UUID
	shipping      order.ShippingInfo
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The order identifier is
// generated by the caller so retries stay idempotent.
func NewCheckoutCommand(
	orderID kernel.UUID,
	sessionID string,
	customerID kernel.UUID,
	shipping order.ShippingInfo,
	paymentMethod order.PaymentMethod,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setSessionID(sessionID),
		command.setCustomerID(customerID),
		command.setShipping(shipping),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SessionID returns the session whose cart is being checked out.
func (c CheckoutCommand) SessionID() string {
	return c.sessionID
}

// CustomerID returns the purchasing customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Shipping returns the delivery contact details.
func (c CheckoutCommand) Shipping() order.ShippingInfo {
	return c.shipping
}

// PaymentMethod returns the chosen payment method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setShipping(shipping order.ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}

	c.shipping = shipping
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
