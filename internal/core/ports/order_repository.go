package ports

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage at version 1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic version check: the write succeeds only when the stored
	// version still matches the aggregate's loaded version, and increments
	// it. Returns VersionConflictError when a concurrent writer got there
	// first; the caller retries by reloading.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByGatewayOrderID retrieves the order holding the given gateway
	// order handle. Used by payment callback processing.
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*order.Order, error)

	// GetAllByCustomer retrieves a customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByFulfiller retrieves the orders assigned to a delivery agent,
	// newest first.
	GetAllByFulfiller(ctx context.Context, fulfillerID kernel.UUID) ([]*order.Order, error)

	// GetUnpaidGatewayCreatedBefore retrieves gateway-paid orders that are
	// still unpaid and were created before the cutoff. The payment sweep
	// job cancels these abandoned checkouts.
	GetUnpaidGatewayCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
