package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// PaymentVerifier is a domain service that authenticates gateway payment
// callbacks before an order is marked paid.
//
// The gateway signs each successful payment with HMAC-SHA256 over the
// string "<gatewayOrderID>|<paymentID>" using the merchant's secret key,
// hex-encoded. Verification recomputes the digest locally and compares it
// in constant time; a mismatched, malformed, or empty signature rejects the
// callback.
//
// Example usage:
//
//	verifier := services.NewPaymentVerifier(secret)
//	if err := verifier.Verify(ord, paymentID, signature); err != nil {
//	    // signature forged or stale, do not mark paid
//	    return err
//	}
//	err := ord.ConfirmGatewayPayment(paymentID, signature)
type PaymentVerifier struct {
	secret []byte
}

// NewPaymentVerifier creates a verifier bound to the merchant secret.
func NewPaymentVerifier(secret string) (*PaymentVerifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &PaymentVerifier{secret: []byte(secret)}, nil
}

// Verify checks that signature authenticates paymentID for the order's
// gateway handle. It returns PaymentRequiredError when the order has no
// gateway order attached, and SignatureInvalidError when the signature does
// not match.
func (v *PaymentVerifier) Verify(ord *order.Order, paymentID, signature string) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	gatewayOrderID := ord.GatewayOrderID()
	if gatewayOrderID == "" {
		return errs.NewPaymentRequiredError(ord.ID().String())
	}
	if paymentID == "" || signature == "" {
		return errs.NewSignatureInvalidError(gatewayOrderID)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.NewSignatureInvalidError(gatewayOrderID)
	}
	return nil
}
