// Package queries contains read-only operations that bypass the domain
// model and read projection-friendly views straight from the database.
// Queries never mutate state and never load aggregates.
package queries

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
)

// OrderItemView is one order line as shown to shoppers and agents: the
// price is the checkout-time snapshot, not the current catalog price.
type OrderItemView struct {
	MedicineID   kernel.UUID
	MedicineName string
	Quantity     int
	PriceMinor   int64
}

// OrderView is the read model for order listings.
type OrderView struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	IsPaid        bool
	TotalMinor    int64
	CreatedAt     time.Time
	Items         []OrderItemView
}
