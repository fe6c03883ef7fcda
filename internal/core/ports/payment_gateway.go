package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
)

// PaymentGateway abstracts the external payment provider. CreateOrder
// registers a pending payment with the provider and returns its order
// handle, which the shopper's client uses to complete the payment.
type PaymentGateway interface {
	// CreateOrder creates a gateway-side order for the given amount in
	// whole currency units, tagged with the local order identifier as the
	// provider receipt. Returns GatewayUnavailableError when the provider
	// cannot be reached or rejects the request.
	CreateOrder(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (gatewayOrderID string, err error)
}
