package order

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// PaymentMethod identifies how an order is paid. The method is fixed at
// order creation and determines how the paid flag is reconciled: cash orders
// become paid when delivered, gateway orders when a verified callback
// arrives.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCod is cash on delivery: unpaid until the order reaches
	// Delivered, at which point payment is presumed collected.
	PaymentMethodCod

	// PaymentMethodRazorpay is the external payment gateway: the order must
	// be paid, via a signature-verified callback, before fulfillment may
	// advance.
	PaymentMethodRazorpay
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:  "unknown",
		PaymentMethodCod:      "cod",
		PaymentMethodRazorpay: "razorpay",
	}
}

// PaymentMethodFromString parses a payment method name as submitted at
// checkout or stored in persistence.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if p != PaymentMethodCod && p != PaymentMethodRazorpay {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the lowercase method name, or "unknown" for invalid values.
func (p PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[p]; ok {
		return s
	}
	return "unknown"
}
