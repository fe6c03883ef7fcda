package cart

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
)

// Warning reports a non-error adjustment a cart mutation had to make. The
// mutation still succeeds; the warning exists so the caller can tell the
// shopper what happened.
type Warning int

const (
	// WarningNone means the mutation applied exactly as requested.
	WarningNone Warning = iota

	// WarningClampedToAvailable means the requested quantity exceeded the
	// medicine's available stock and was clamped down to it.
	WarningClampedToAvailable

	// WarningItemRemoved means the entry was removed because its quantity
	// reached zero or the stock hit zero.
	WarningItemRemoved
)

// String returns the wire name of the warning, empty for WarningNone.
func (w Warning) String() string {
	switch w {
	case WarningClampedToAvailable:
		return "clamped_to_available"
	case WarningItemRemoved:
		return "item_removed"
	default:
		return ""
	}
}

// Mutation is the result of a successful cart mutation: the resulting
// quantity for the entry (0 when removed) and any adjustment warning.
type Mutation struct {
	Quantity int
	Warning  Warning
}

// Entry is one cart line: a medicine reference and the requested quantity.
// Quantity is always positive; an entry that would reach zero is removed.
type Entry struct {
	MedicineID kernel.UUID
	Quantity   int
}

// Line is one resolved snapshot line: the live medicine and the quantity to
// order. Produced by Snapshot in insertion order.
type Line struct {
	Medicine *medicine.Medicine
	Quantity int
}

// Cart is an ephemeral, per-session selection of medicines awaiting
// checkout. It keeps entries in insertion order and re-validates every
// mutation against the medicine's live stock, clamping rather than failing
// when availability has shrunk.
//
// A Cart has no persistent identity: it is created on first add, mutated in
// place, and destroyed on successful checkout or explicit clear. It is owned
// by a single session and is not safe for concurrent use; the session store
// serializes access.
type Cart struct {
	entries []Entry
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart reconstructs a cart from stored entries, preserving order.
// Entries with non-positive quantities are dropped.
func RestoreCart(entries []Entry) *Cart {
	c := &Cart{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Quantity > 0 {
			c.entries = append(c.entries, e)
		}
	}
	return c
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int {
	return len(c.entries)
}

// Quantity returns the requested quantity for a medicine, or 0 when absent.
func (c *Cart) Quantity(medicineID kernel.UUID) int {
	if i := c.indexOf(medicineID); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// Entries returns a copy of the cart's entries in insertion order.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Change adjusts the entry for med by delta (add is +1, increment +1,
// decrement -1). The target quantity is clamped to [0, available stock]:
// reaching zero removes the entry (WarningItemRemoved), exceeding stock
// clamps to it (WarningClampedToAvailable). Idempotent given identical
// input state.
func (c *Cart) Change(med *medicine.Medicine, delta int) (Mutation, error) {
	if err := med.Validate(); err != nil {
		return Mutation{}, err
	}
	return c.apply(med, c.Quantity(med.ID())+delta), nil
}

// SetQuantity sets the entry for med to an absolute quantity with the same
// clamping rule as Change. A non-positive quantity removes the entry and
// reports WarningItemRemoved.
func (c *Cart) SetQuantity(med *medicine.Medicine, quantity int) (Mutation, error) {
	if err := med.Validate(); err != nil {
		return Mutation{}, err
	}
	return c.apply(med, quantity), nil
}

// Remove deletes the entry for a medicine unconditionally.
func (c *Cart) Remove(medicineID kernel.UUID) {
	if i := c.indexOf(medicineID); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
	}
}

// Clear removes all entries unconditionally.
func (c *Cart) Clear() {
	c.entries = nil
}

// Snapshot resolves the cart against current medicine data and returns the
// lines to order, in original insertion order. Entries whose medicine is
// missing from resolve or inactive are silently dropped from the snapshot
// but kept in the cart, tolerating transient deactivation.
func (c *Cart) Snapshot(resolve map[kernel.UUID]*medicine.Medicine) []Line {
	lines := make([]Line, 0, len(c.entries))
	for _, entry := range c.entries {
		med, ok := resolve[entry.MedicineID]
		if !ok || med == nil || !med.IsActive() {
			continue
		}
		lines = append(lines, Line{Medicine: med, Quantity: entry.Quantity})
	}
	return lines
}

// apply clamps target to [0, stock] and stores the result, removing the
// entry when the clamped quantity is zero.
func (c *Cart) apply(med *medicine.Medicine, target int) Mutation {
	warning := WarningNone
	if target > med.Stock() {
		target = med.Stock()
		warning = WarningClampedToAvailable
	}
	if target <= 0 {
		c.Remove(med.ID())
		return Mutation{Quantity: 0, Warning: WarningItemRemoved}
	}

	if i := c.indexOf(med.ID()); i >= 0 {
		c.entries[i].Quantity = target
	} else {
		c.entries = append(c.entries, Entry{MedicineID: med.ID(), Quantity: target})
	}
	return Mutation{Quantity: target, Warning: warning}
}

func (c *Cart) indexOf(medicineID kernel.UUID) int {
	for i, entry := range c.entries {
		if entry.MedicineID.IsEqual(medicineID) {
			return i
		}
	}
	return -1
}
