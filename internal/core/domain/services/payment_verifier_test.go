package services_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/errs"
)

const testSecret = "rzp_test_secret"

func sign(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func gatewayOrder(t *testing.T) *order.Order {
	t.Helper()

	shipping, err := order.NewShippingInfo("Priya Sharma", "+91 98x", "12 MG Road, Bengaluru")
	require.NoError(t, err)
	price, err := kernel.NewMoney(25000)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), 2, price)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shipping, order.PaymentMethodRazorpay, []order.Item{item})
	require.NoError(t, err)
	require.NoError(t, ord.AttachGatewayOrder("order_razorpay_123"))
	return ord
}

func Test_NewPaymentVerifier_RequiresSecret(t *testing.T) {
	_, err := services.NewPaymentVerifier("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_PaymentVerifier_Verify(t *testing.T) {
	verifier, err := services.NewPaymentVerifier(testSecret)
	require.NoError(t, err)
	ord := gatewayOrder(t)

	err = verifier.Verify(ord, "pay_456", sign("order_razorpay_123", "pay_456"))

	assert.NoError(t, err)
}

func Test_PaymentVerifier_Verify_RejectsForgedSignature(t *testing.T) {
	verifier, err := services.NewPaymentVerifier(testSecret)
	require.NoError(t, err)
	ord := gatewayOrder(t)

	tests := map[string]struct {
		paymentID string
		signature string
	}{
		"wrong secret digest":         {"pay_456", "deadbeef"},
		"signature for other payment": {"pay_456", sign("order_razorpay_123", "pay_999")},
		"empty signature":             {"pay_456", ""},
		"empty payment id":            {"", sign("order_razorpay_123", "")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := verifier.Verify(ord, test.paymentID, test.signature)
			assert.ErrorIs(t, err, errs.ErrSignatureInvalid)
		})
	}
}

func Test_PaymentVerifier_Verify_RequiresGatewayOrder(t *testing.T) {
	verifier, err := services.NewPaymentVerifier(testSecret)
	require.NoError(t, err)

	shipping, err := order.NewShippingInfo("Priya Sharma", "+91 98x", "12 MG Road")
	require.NoError(t, err)
	price, err := kernel.NewMoney(25000)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shipping, order.PaymentMethodRazorpay, []order.Item{item})
	require.NoError(t, err)

	err = verifier.Verify(ord, "pay_456", "whatever")

	assert.ErrorIs(t, err, errs.ErrPaymentRequired)
}
