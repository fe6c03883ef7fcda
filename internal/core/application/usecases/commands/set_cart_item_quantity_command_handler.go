package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// SetCartItemQuantityCommandHandler applies absolute cart mutations.
type SetCartItemQuantityCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory MedicineUoWFactory
}

// NewSetCartItemQuantityCommandHandler creates a handler for absolute cart mutations.
func NewSetCartItemQuantityCommandHandler(cartStore ports.CartStore, uowFactory MedicineUoWFactory) SetCartItemQuantityCommandHandler {
	return SetCartItemQuantityCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle sets the entry to the requested quantity, clamped to live stock.
// Setting a positive quantity for an inactive medicine is rejected;
// quantity zero always succeeds as a removal.
func (h SetCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartItemQuantityCommand) (cart.Mutation, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Mutation{}, err
	}

	med, err := loadMedicine(ctx, h.uowFactory, cmd.MedicineID())
	if err != nil {
		return cart.Mutation{}, err
	}

	if !med.IsActive() && cmd.Quantity() > 0 {
		return cart.Mutation{}, errs.NewObjectNotFoundError("medicineID", cmd.MedicineID())
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return cart.Mutation{}, err
	}

	mutation, err := sessionCart.SetQuantity(med, cmd.Quantity())
	if err != nil {
		return cart.Mutation{}, err
	}

	if err = h.cartStore.Put(ctx, cmd.SessionID(), sessionCart); err != nil {
		return cart.Mutation{}, err
	}

	return mutation, nil
}
