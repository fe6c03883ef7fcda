package order

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is an immutable order line: a medicine reference, the ordered
// quantity, and the unit price snapshotted at order-creation time. The
// snapshot decouples the order's value from later catalog price changes.
//
// Items are created atomically with their Order, never mutated, and only
// removed when the whole Order is deleted.
type Item struct { //nolint:recvcheck //using for validation
	medicineID kernel.UUID
	quantity   int
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line. Quantity must be positive and the
// price must be a constructed Money value.
func NewItem(medicineID kernel.UUID, quantity int, price kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMedicineID(medicineID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MedicineID returns the referenced medicine's identifier.
func (i Item) MedicineID() kernel.UUID {
	return i.medicineID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshotted at order creation.
func (i Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns quantity times the snapshotted unit price.
func (i Item) Subtotal() kernel.Money {
	return i.price.Multiply(i.quantity)
}

func (i *Item) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	i.medicineID = medicineID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
