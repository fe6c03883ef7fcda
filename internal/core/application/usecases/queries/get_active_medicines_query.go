package queries

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetActiveMedicinesQueryIsNotConstructed = errors.New(
	"GetActiveMedicinesQuery must be created via NewGetActiveMedicinesQuery constructor",
)

// GetActiveMedicinesQuery lists the purchasable catalog: active medicines,
// optionally filtered by a case-insensitive name/brand search and an
// in-stock-only flag.
type GetActiveMedicinesQuery struct {
	search      string
	inStockOnly bool

	guard guard.ConstructorGuard
}

// NewGetActiveMedicinesQuery creates a catalog listing query. An empty
// search term matches everything.
func NewGetActiveMedicinesQuery(search string, inStockOnly bool) GetActiveMedicinesQuery {
	return GetActiveMedicinesQuery{
		search:      strings.TrimSpace(search),
		inStockOnly: inStockOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveMedicinesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveMedicinesQueryIsNotConstructed)
}

// Search returns the name/brand filter term.
func (q GetActiveMedicinesQuery) Search() string {
	return q.search
}

// InStockOnly reports whether out-of-stock medicines are excluded.
func (q GetActiveMedicinesQuery) InStockOnly() bool {
	return q.inStockOnly
}

// MedicineView is the catalog read model.
type MedicineView struct {
	ID          kernel.UUID
	Name        string
	Brand       string
	PriceMinor  int64
	Stock       int
	Description string
}
