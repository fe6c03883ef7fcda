package commands

import (
	"context"
	"errors"
	"slices"
	"strings"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout finds nothing orderable in the
// session cart, either because it is empty or because every entry's
// medicine has gone inactive.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutCommandHandler materializes a session cart into an order.
//
// The whole operation runs in one transaction: every cart medicine is
// row-locked, stock is reserved line by line, and the order is persisted
// with per-line price snapshots. Any failure, including a single
// out-of-stock line, rolls back all reservations and leaves the cart
// intact. The cart is destroyed only after the transaction commits.
type CheckoutCommandHandler struct {
	cartStore  ports.CartStore
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(cartStore ports.CartStore, uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		cartStore:  cartStore,
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command. Returns ErrCartIsEmpty when there
// is nothing to order and InsufficientStockError when any line cannot be
// covered; in both cases no state changes.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sessionCart, err := h.cartStore.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if sessionCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	medicineRepo := uow.MedicineRepository()
	locked, err := lockCartMedicines(ctx, medicineRepo, sessionCart)
	if err != nil {
		return err
	}

	lines := sessionCart.Snapshot(locked)
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		if err = line.Medicine.Reserve(line.Quantity); err != nil {
			return err
		}
		if err = medicineRepo.Update(ctx, line.Medicine); err != nil {
			return err
		}

		item, err := order.NewItem(line.Medicine.ID(), line.Quantity, line.Medicine.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Shipping(), cmd.PaymentMethod(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartStore.Delete(ctx, cmd.SessionID())
}

// lockCartMedicines row-locks every medicine referenced by the cart, in a
// deterministic identifier order so concurrent checkouts over overlapping
// carts cannot deadlock. Missing medicines are skipped: the snapshot drops
// their entries.
func lockCartMedicines(
	ctx context.Context,
	repo ports.MedicineRepository,
	sessionCart *cart.Cart,
) (map[kernel.UUID]*medicine.Medicine, error) {
	entries := sessionCart.Entries()

	ids := make([]kernel.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.MedicineID)
	}
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return strings.Compare(a.String(), b.String())
	})

	locked := make(map[kernel.UUID]*medicine.Medicine, len(ids))
	for _, id := range ids {
		med, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}
		locked[id] = med
	}

	return locked, nil
}
