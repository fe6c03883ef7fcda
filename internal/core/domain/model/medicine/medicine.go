package medicine

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrMedicineIsNotConstructed is returned when a Medicine instance was not
// created through the NewMedicine or RestoreMedicine factory functions.
var ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine or RestoreMedicine")

// Medicine is the catalog aggregate: a sellable item with a unit price and an
// available stock quantity. The stock quantity is the inventory ledger for
// the item and may only change through Reserve and Release; cart and checkout
// logic never mutate it directly.
//
// Invariants:
//   - Stock is never negative
//   - Price is positive
//   - Reserve fails rather than oversell, surfacing the remaining quantity
//
// All fields are private; the aggregate can only be created through
// NewMedicine (new items) or RestoreMedicine (rehydration from persistence).
type Medicine struct {
	id          kernel.UUID
	name        string
	brand       string
	price       kernel.Money
	stock       int
	description string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewMedicine creates an active catalog item with validation.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - name: display name (required)
//   - brand: manufacturer brand (optional)
//   - price: unit price (must be positive)
//   - stock: initial available quantity (must not be negative)
//
// Returns the created medicine, or a joined validation error if any
// parameter is invalid.
func NewMedicine(
	id kernel.UUID,
	name string,
	brand string,
	price kernel.Money,
	stock int,
) (*Medicine, error) {
	m := &Medicine{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setStock(stock),
	); err != nil {
		return nil, err
	}

	m.brand = brand
	return m, nil
}

// RestoreMedicine reconstructs a medicine from persisted state. Unlike
// NewMedicine it accepts the stored active flag and description.
func RestoreMedicine(
	id kernel.UUID,
	name string,
	brand string,
	price kernel.Money,
	stock int,
	description string,
	isActive bool,
) (*Medicine, error) {
	m, err := NewMedicine(id, name, brand, price, stock)
	if err != nil {
		return nil, err
	}

	m.description = description
	m.isActive = isActive
	return m, nil
}

// Validate ensures the Medicine was created through a factory function.
func (m *Medicine) Validate() error {
	if m == nil {
		return ErrMedicineIsNotConstructed
	}
	return m.guard.Validate(ErrMedicineIsNotConstructed)
}

// IsEqual compares two medicines by their unique identifiers.
func (m *Medicine) IsEqual(other *Medicine) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the medicine's unique identifier.
func (m *Medicine) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Medicine) Name() string {
	return m.name
}

// Brand returns the manufacturer brand, possibly empty.
func (m *Medicine) Brand() string {
	return m.brand
}

// Price returns the current unit price. Orders snapshot this value at
// checkout; later price changes do not affect existing orders.
func (m *Medicine) Price() kernel.Money {
	return m.price
}

// Stock returns the currently available quantity.
func (m *Medicine) Stock() int {
	return m.stock
}

// Description returns the free-form description text.
func (m *Medicine) Description() string {
	return m.description
}

// IsActive reports whether the item is visible and sellable.
func (m *Medicine) IsActive() bool {
	return m.isActive
}

// Reserve decrements available stock by quantity. It succeeds only when
// quantity does not exceed the available stock; otherwise it returns an
// InsufficientStockError carrying the remaining quantity and leaves stock
// unchanged.
//
// Reserve must be called inside the same transaction as the order write it
// accompanies, with the medicine row locked, so concurrent checkouts cannot
// oversell the last units.
func (m *Medicine) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("reserve quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > m.stock {
		return errs.NewInsufficientStockError(m.id.String(), quantity, m.stock)
	}

	m.stock -= quantity
	return nil
}

// Release increments available stock by quantity. Used by order cancellation
// to return reserved units to the ledger. There is no upper bound: a release
// is the inverse of an earlier reserve and is applied even when the item has
// since been deactivated, since the physical stock exists either way.
func (m *Medicine) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("release quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	m.stock += quantity
	return nil
}

// Restock adds delivered supply to the ledger. Administrative operation.
func (m *Medicine) Restock(quantity int) error {
	return m.Release(quantity)
}

// ChangePrice updates the unit price for future orders. Existing order lines
// keep their snapshotted price.
func (m *Medicine) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

// Deactivate hides the item from the catalog and from cart snapshots.
// Stock is retained.
func (m *Medicine) Deactivate() {
	m.isActive = false
}

// Activate makes the item sellable again.
func (m *Medicine) Activate() {
	m.isActive = true
}

// SetDescription replaces the description text.
func (m *Medicine) SetDescription(description string) {
	m.description = description
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Medicine) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must be greater than zero"))
	}
	m.price = price
	return nil
}

func (m *Medicine) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}
