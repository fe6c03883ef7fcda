package commands

import (
	"context"
	"errors"
	"slices"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// ErrCancellationNotAllowed is returned when the acting role may not cancel
// orders at all. Delivery agents advance orders; they never cancel them.
var ErrCancellationNotAllowed = errors.New("role is not allowed to cancel orders")

// CancelOrderCommandHandler cancels orders and releases their reserved
// stock. Cancellation and restoration run in the same transaction: either
// the order is cancelled and every line's quantity is back on the shelf,
// or nothing changed.
type CancelOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CheckoutUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the order. Customers see only their own orders; a foreign
// order surfaces as ObjectNotFoundError. Stock is restored even to
// medicines deactivated since checkout; lines whose medicine row is gone
// are skipped.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.Role() == kernel.RoleDelivery {
		return ErrCancellationNotAllowed
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Role() == kernel.RoleCustomer && !aggregate.CustomerID().IsEqual(cmd.ActorID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseOrderStock returns every line's quantity to the catalog, locking
// rows in deterministic identifier order like checkout does. Shared by
// cancellation and the abandoned-payment sweep.
func releaseOrderStock(ctx context.Context, uow CheckoutUoW, aggregate *order.Order) error {
	items := aggregate.Items()
	slices.SortFunc(items, func(a, b order.Item) int {
		return strings.Compare(a.MedicineID().String(), b.MedicineID().String())
	})

	medicineRepo := uow.MedicineRepository()
	for _, item := range items {
		med, err := medicineRepo.GetForUpdate(ctx, item.MedicineID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		if err = med.Release(item.Quantity()); err != nil {
			return err
		}
		if err = medicineRepo.Update(ctx, med); err != nil {
			return err
		}
	}

	return nil
}
