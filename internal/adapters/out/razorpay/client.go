// Package razorpay implements the payment gateway port against the Razorpay
// Orders API using the official Go SDK.
package razorpay

import (
	"context"
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	razorpaysdk "github.com/razorpay/razorpay-go"
)

// Client wraps the Razorpay SDK behind the PaymentGateway port. The SDK
// does not accept a context, so cancellation only takes effect between
// calls.
type Client struct {
	client   *razorpaysdk.Client
	currency string
}

// NewClient creates a gateway client authenticated with the given API key
// pair.
func NewClient(keyID, keySecret string) (*Client, error) {
	if keyID == "" {
		return nil, errs.NewValueIsRequiredError("keyID")
	}
	if keySecret == "" {
		return nil, errs.NewValueIsRequiredError("keySecret")
	}

	return &Client{
		client:   razorpaysdk.NewClient(keyID, keySecret),
		currency: "INR",
	}, nil
}

// CreateOrder registers a gateway-side order for the given amount in whole
// currency units, auto-capturing the payment. The local order identifier
// travels in the receipt and notes so gateway records can be correlated
// back.
func (c *Client) CreateOrder(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", errs.NewGatewayUnavailableError(err)
	}

	data := map[string]interface{}{
		"amount":          amount.WholeUnits(),
		"currency":        c.currency,
		"payment_capture": 1,
		"receipt":         fmt.Sprintf("app_order_%s", orderID.String()),
		"notes":           map[string]interface{}{"app_order_id": orderID.String()},
	}

	created, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", errs.NewGatewayUnavailableError(err)
	}

	gatewayOrderID, ok := created["id"].(string)
	if !ok || gatewayOrderID == "" {
		return "", errs.NewGatewayUnavailableError(errors.New("gateway response has no order id"))
	}

	return gatewayOrderID, nil
}
