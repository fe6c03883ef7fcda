package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pharmacy/internal/core/domain/model/kernel"
)

// GetActiveMedicinesQueryHandler reads the purchasable catalog.
type GetActiveMedicinesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveMedicinesQueryHandler creates a handler for catalog listing queries.
func NewGetActiveMedicinesQueryHandler(db *gorm.DB) GetActiveMedicinesQueryHandler {
	return GetActiveMedicinesQueryHandler{db: db}
}

// Handle returns active medicines matching the filters, sorted by name.
func (h GetActiveMedicinesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveMedicinesQuery,
) ([]MedicineView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, brand, price, stock, description
		FROM medicines
		WHERE is_active
	`
	args := make([]any, 0, 2)

	if query.Search() != "" {
		sql += ` AND (name ILIKE ? OR brand ILIKE ?)`
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}
	if query.InStockOnly() {
		sql += ` AND stock > 0`
	}
	sql += ` ORDER BY name, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medicines := make([]MedicineView, 0)
	for rows.Next() {
		var (
			rawID uuid.UUID
			view  MedicineView
		)

		if err = rows.Scan(&rawID, &view.Name, &view.Brand, &view.PriceMinor, &view.Stock, &view.Description); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = id

		medicines = append(medicines, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return medicines, nil
}
