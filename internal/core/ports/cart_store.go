package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/cart"
)

// CartStore holds the ephemeral per-session carts. Implementations
// serialize access per session; carts are never shared across sessions and
// vanish on checkout, clear, or store restart.
type CartStore interface {
	// Get returns the cart for a session, creating an empty one on first
	// access.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Put stores the session's cart, replacing any previous state.
	Put(ctx context.Context, sessionID string, c *cart.Cart) error

	// Delete removes the session's cart entirely.
	Delete(ctx context.Context, sessionID string) error
}
