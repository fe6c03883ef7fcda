package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// RemoveCartItemCommandHandler removes cart entries. Removal never touches
// the catalog: entries for deactivated or deleted medicines must remain
// removable.
type RemoveCartItemCommandHandler struct {
	cartStore ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart entry removal.
func NewRemoveCartItemCommandHandler(cartStore ports.CartStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		cartStore: cartStore,
	}
}

// Handle removes the entry. Removing an absent entry is a no-op.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	sessionCart.Remove(cmd.MedicineID())

	return h.cartStore.Put(ctx, cmd.SessionID(), sessionCart)
}
