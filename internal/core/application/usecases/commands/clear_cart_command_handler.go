package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// ClearCartCommandHandler discards session carts.
type ClearCartCommandHandler struct {
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(cartStore ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		cartStore: cartStore,
	}
}

// Handle deletes the session's cart. Clearing an absent cart is a no-op.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.cartStore.Delete(ctx, cmd.SessionID())
}
