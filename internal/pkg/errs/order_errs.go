package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ordering and payment failure taxonomy.
var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrPaymentRequired    = errors.New("payment required")
	ErrSignatureInvalid   = errors.New("signature invalid")
	ErrVersionConflict    = errors.New("version conflict")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrOrderAlreadyPaid   = errors.New("order is already paid")
)

// InsufficientStockError indicates that a reservation asked for more units
// than are currently available. Available carries the remaining quantity so
// callers can clamp or report it.
type InsufficientStockError struct {
	MedicineID string
	Requested  int
	Available  int
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(medicineID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{MedicineID: medicineID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: requested %d of %s, %d available",
		ErrInsufficientStock, e.Requested, e.MedicineID, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// IllegalTransitionError indicates an order status change that the state
// machine forbids. Next carries the single legal next status when one exists,
// and is empty when the current status is terminal.
type IllegalTransitionError struct {
	From      string
	Requested string
	Next      string
}

// NewIllegalTransitionError creates an IllegalTransitionError.
func NewIllegalTransitionError(from, requested, next string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Requested: requested, Next: next}
}

func (e *IllegalTransitionError) Error() string {
	if e.Next != "" {
		return fmt.Sprintf("%s: %s -> %s, next legal status is %s",
			ErrIllegalTransition, e.From, e.Requested, e.Next)
	}
	return fmt.Sprintf("%s: %s -> %s, no transitions allowed from %s",
		ErrIllegalTransition, e.From, e.Requested, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// PaymentRequiredError indicates that a gateway-paid order attempted a
// fulfillment step before its payment was confirmed.
type PaymentRequiredError struct {
	OrderID string
}

// NewPaymentRequiredError creates a PaymentRequiredError.
func NewPaymentRequiredError(orderID string) *PaymentRequiredError {
	return &PaymentRequiredError{OrderID: orderID}
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("%s: order %s is not paid", ErrPaymentRequired, e.OrderID)
}

func (e *PaymentRequiredError) Unwrap() error {
	return ErrPaymentRequired
}

// SignatureInvalidError indicates that a payment callback carried a signature
// that does not match the expected HMAC. The callback must be discarded
// without touching payment state.
type SignatureInvalidError struct {
	GatewayOrderID string
}

// NewSignatureInvalidError creates a SignatureInvalidError.
func NewSignatureInvalidError(gatewayOrderID string) *SignatureInvalidError {
	return &SignatureInvalidError{GatewayOrderID: gatewayOrderID}
}

func (e *SignatureInvalidError) Error() string {
	return fmt.Sprintf("%s: callback for gateway order %s", ErrSignatureInvalid, e.GatewayOrderID)
}

func (e *SignatureInvalidError) Unwrap() error {
	return ErrSignatureInvalid
}

// VersionConflictError indicates that an optimistic-concurrency write lost a
// race: the row's version no longer matched the one the aggregate was read
// at. The caller should re-fetch and retry.
type VersionConflictError struct {
	ParamName string
	ID        any
}

// NewVersionConflictError creates a VersionConflictError.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: %s %v was modified concurrently", ErrVersionConflict, e.ParamName, e.ID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// GatewayUnavailableError indicates that the external payment gateway could
// not be reached or rejected the request. Retryable by the caller, never
// silently swallowed.
type GatewayUnavailableError struct {
	Cause error
}

// NewGatewayUnavailableError creates a GatewayUnavailableError wrapping the transport failure.
func NewGatewayUnavailableError(cause error) *GatewayUnavailableError {
	return &GatewayUnavailableError{Cause: cause}
}

func (e *GatewayUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrGatewayUnavailable, e.Cause)
	}
	return ErrGatewayUnavailable.Error()
}

func (e *GatewayUnavailableError) Unwrap() error {
	return ErrGatewayUnavailable
}
