package order

import (
	"errors"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAlreadyDelivered is returned by Advance when the order has already
	// reached Delivered. It is informational: the caller should treat it as
	// a no-op, not a failure.
	ErrAlreadyDelivered = errors.New("order is already delivered")

	// ErrOrderIsTerminal is returned when an operation that requires a
	// non-terminal order (such as fulfiller assignment) is attempted on a
	// delivered or cancelled order.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")
)

// Order is the aggregate root for a placed purchase. Its header fields
// (customer, shipping contact, payment method) and line items are immutable
// after creation; only the fulfillment status, paid flag, assigned fulfiller,
// and gateway correlation fields change over the order's life.
//
// Order follows these invariants:
//   - At least one line item, each with a positive quantity and a price
//     snapshotted at creation
//   - Status transitions follow the canonical state machine in Status
//   - A razorpay order cannot advance through fulfillment until paid
//   - A cash order becomes paid exactly when it is delivered
//   - The version counter backs optimistic concurrency in the repository
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	shipping      ShippingInfo
	paymentMethod PaymentMethod
	status        Status
	isPaid        bool
	fulfillerID   *kernel.UUID

	// gateway correlation, populated only for razorpay orders
	gatewayOrderID   string
	gatewayPaymentID string
	gatewaySignature string

	items     []Item
	createdAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Placed status from snapshotted line items.
// This is the checkout materialization step: the caller has already reserved
// stock for every item within the same transaction.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: the purchasing actor
//   - shipping: validated delivery contact
//   - paymentMethod: cod or razorpay, fixed for the order's life
//   - items: at least one immutable line item
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shipping ShippingInfo,
	paymentMethod PaymentMethod,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:    StatusPlaced,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShipping(shipping),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state, including its
// mutable fields and version counter. Used only by repositories.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shipping ShippingInfo,
	paymentMethod PaymentMethod,
	status Status,
	isPaid bool,
	fulfillerID *kernel.UUID,
	gatewayOrderID string,
	gatewayPaymentID string,
	gatewaySignature string,
	createdAt time.Time,
	version int,
	items []Item,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShipping(shipping),
		o.setPaymentMethod(paymentMethod),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if fulfillerID != nil {
		if err := fulfillerID.Validate(); err != nil {
			return nil, err
		}
		fID := *fulfillerID
		o.fulfillerID = &fID
	}

	o.isPaid = isPaid
	o.gatewayOrderID = gatewayOrderID
	o.gatewayPaymentID = gatewayPaymentID
	o.gatewaySignature = gatewaySignature
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing actor's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Shipping returns the delivery contact captured at checkout.
func (o *Order) Shipping() ShippingInfo {
	return o.shipping
}

// PaymentMethod returns the payment method fixed at creation.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has been reconciled.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// FulfillerID returns the assigned fulfiller's ID, or nil if unassigned.
func (o *Order) FulfillerID() *kernel.UUID {
	return o.fulfillerID
}

// GatewayOrderID returns the gateway-side order handle, empty for cash orders.
func (o *Order) GatewayOrderID() string {
	return o.gatewayOrderID
}

// GatewayPaymentID returns the gateway-side payment handle from a verified callback.
func (o *Order) GatewayPaymentID() string {
	return o.gatewayPaymentID
}

// GatewaySignature returns the verified callback signature.
func (o *Order) GatewaySignature() string {
	return o.gatewaySignature
}

// CreatedAt returns the checkout timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency version this aggregate was read at.
func (o *Order) Version() int {
	return o.version
}

// Items returns a copy of the order's line items in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total: the sum of quantity times snapshotted price
// across all line items.
func (o *Order) Total() kernel.Money {
	total, _ := kernel.NewMoney(0)
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Advance performs a fulfiller-driven status transition to target.
//
// Policy:
//   - Only the delivery role may advance fulfillment
//   - From Cancelled no transition is legal
//   - From Delivered the call is an informational no-op (ErrAlreadyDelivered)
//   - A razorpay order must already be paid (PaymentRequiredError otherwise)
//   - The target must be exactly the next status along
//     Placed -> Packed -> Shipped -> Delivered; skipping a step or moving
//     backward fails with an IllegalTransitionError that reports the single
//     legal next status
//
// Side effect: a cash-on-delivery order reaching Delivered is marked paid,
// since payment is collected on handover.
func (o *Order) Advance(role kernel.Role, target Status) error {
	if role != kernel.RoleDelivery {
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%s cannot advance fulfillment", role))
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if o.status == StatusCancelled {
		return errs.NewIllegalTransitionError(o.status.String(), target.String(), "")
	}
	if o.status == StatusDelivered {
		return ErrAlreadyDelivered
	}
	if o.paymentMethod == PaymentMethodRazorpay && !o.isPaid {
		return errs.NewPaymentRequiredError(o.id.String())
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}
	if target != next {
		return errs.NewIllegalTransitionError(o.status.String(), target.String(), next.String())
	}

	o.status = target
	if o.status == StatusDelivered && o.paymentMethod == PaymentMethodCod {
		o.isPaid = true
	}
	return nil
}

// Cancel performs the customer-driven transition to Cancelled. Legal from
// Placed, Packed, and Shipped only. The caller must release every line
// item's reserved stock within the same transaction as this status write.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return errs.NewIllegalTransitionError(o.status.String(), StatusCancelled.String(), "")
	}

	o.status = StatusCancelled
	return nil
}

// AssignFulfiller assigns or reassigns the delivery actor responsible for
// this order. Permitted at any non-terminal status; assignment does not
// itself change the status.
func (o *Order) AssignFulfiller(fulfillerID kernel.UUID) error {
	if err := fulfillerID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderIsTerminal
	}

	o.fulfillerID = &fulfillerID
	return nil
}

// AttachGatewayOrder stores the gateway-side order handle created for this
// order's total. Only razorpay orders carry gateway correlation; an already
// paid order must not create another gateway transaction.
func (o *Order) AttachGatewayOrder(gatewayOrderID string) error {
	if o.paymentMethod != PaymentMethodRazorpay {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			errors.New("only razorpay orders carry a gateway order"))
	}
	if o.isPaid {
		return errs.ErrOrderAlreadyPaid
	}
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gateway order id")
	}

	o.gatewayOrderID = gatewayOrderID
	return nil
}

// ConfirmGatewayPayment records a signature-verified gateway callback:
// stores both handles and marks the order paid. The caller must have
// verified the signature first; this method never runs for a mismatch.
func (o *Order) ConfirmGatewayPayment(paymentID, signature string) error {
	if o.paymentMethod != PaymentMethodRazorpay {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			errors.New("only razorpay orders receive gateway callbacks"))
	}
	if o.isPaid {
		return errs.ErrOrderAlreadyPaid
	}
	if o.gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gateway order id")
	}
	if paymentID == "" {
		return errs.NewValueIsRequiredError("gateway payment id")
	}

	o.gatewayPaymentID = paymentID
	o.gatewaySignature = signature
	o.isPaid = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShipping(shipping ShippingInfo) error {
	if err := shipping.Validate(); err != nil {
		return err
	}
	o.shipping = shipping
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
