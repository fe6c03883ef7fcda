package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
)

// GetCartQueryHandler resolves session carts against the live catalog.
// It is the one query that touches the session store as well as the
// database: entries are ordered by the cart, priced by the catalog.
type GetCartQueryHandler struct {
	cartStore ports.CartStore
	db        *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart view queries.
func NewGetCartQueryHandler(cartStore ports.CartStore, db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{
		cartStore: cartStore,
		db:        db,
	}
}

// Handle returns the resolved cart in insertion order. Entries whose
// medicine is inactive or deleted are omitted from the view but stay in
// the cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	sessionCart, err := h.cartStore.Get(ctx, query.SessionID())
	if err != nil {
		return CartView{}, err
	}

	entries := sessionCart.Entries()
	if len(entries) == 0 {
		return CartView{Lines: []CartLineView{}}, nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.MedicineID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM medicines
		WHERE is_active AND id IN ?
	`, ids).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	type priced struct {
		name       string
		priceMinor int64
	}
	catalog := make(map[kernel.UUID]priced, len(entries))

	for rows.Next() {
		var (
			rawID uuid.UUID
			p     priced
		)
		if err = rows.Scan(&rawID, &p.name, &p.priceMinor); err != nil {
			return CartView{}, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return CartView{}, idErr
		}
		catalog[id] = p
	}
	if err = rows.Err(); err != nil {
		return CartView{}, err
	}

	view := CartView{Lines: make([]CartLineView, 0, len(entries))}
	for _, entry := range entries {
		p, ok := catalog[entry.MedicineID]
		if !ok {
			continue
		}

		subtotal := p.priceMinor * int64(entry.Quantity)
		view.Lines = append(view.Lines, CartLineView{
			MedicineID:    entry.MedicineID,
			MedicineName:  p.name,
			PriceMinor:    p.priceMinor,
			Quantity:      entry.Quantity,
			SubtotalMinor: subtotal,
		})
		view.TotalMinor += subtotal
	}

	return view, nil
}
