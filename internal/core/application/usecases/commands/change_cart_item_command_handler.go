package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// ChangeCartItemCommandHandler applies relative cart mutations. It loads
// the medicine to clamp against live stock, mutates the session cart, and
// stores it back.
type ChangeCartItemCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory MedicineUoWFactory
}

// NewChangeCartItemCommandHandler creates a handler for relative cart mutations.
func NewChangeCartItemCommandHandler(cartStore ports.CartStore, uowFactory MedicineUoWFactory) ChangeCartItemCommandHandler {
	return ChangeCartItemCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle processes the cart mutation. Adding an inactive medicine is
// rejected with ObjectNotFoundError; decrementing one is still allowed so
// shoppers can drain stale entries.
func (h ChangeCartItemCommandHandler) Handle(ctx context.Context, cmd ChangeCartItemCommand) (cart.Mutation, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Mutation{}, err
	}

	med, err := loadMedicine(ctx, h.uowFactory, cmd.MedicineID())
	if err != nil {
		return cart.Mutation{}, err
	}

	if !med.IsActive() && cmd.Delta() > 0 {
		return cart.Mutation{}, errs.NewObjectNotFoundError("medicineID", cmd.MedicineID())
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return cart.Mutation{}, err
	}

	mutation, err := sessionCart.Change(med, cmd.Delta())
	if err != nil {
		return cart.Mutation{}, err
	}

	if err = h.cartStore.Put(ctx, cmd.SessionID(), sessionCart); err != nil {
		return cart.Mutation{}, err
	}

	return mutation, nil
}

// loadMedicine reads one medicine in its own short transaction. Cart
// mutations only need a consistent snapshot of stock, not a lock.
func loadMedicine(ctx context.Context, uowFactory MedicineUoWFactory, id kernel.UUID) (*medicine.Medicine, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	med, err := uow.MedicineRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return med, nil
}
