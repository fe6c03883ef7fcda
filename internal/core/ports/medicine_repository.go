// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the session cart store,
// and the payment gateway. Adapters implement these interfaces, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
)

// MedicineRepository defines the persistence contract for medicine
// aggregates.
type MedicineRepository interface {
	// Add persists a new medicine aggregate to storage.
	Add(ctx context.Context, med *medicine.Medicine) error

	// Update persists changes to an existing medicine aggregate.
	Update(ctx context.Context, med *medicine.Medicine) error

	// Get retrieves a medicine by its unique identifier.
	// Returns ObjectNotFoundError when no such medicine exists.
	Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// GetForUpdate retrieves a medicine and takes a row-level write lock on
	// it for the duration of the current transaction. Checkout and
	// cancellation use it to serialize concurrent stock mutations. Must be
	// called inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// GetByIDs retrieves the medicines with the given identifiers. Missing
	// identifiers are silently absent from the result; the caller decides
	// whether absence is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*medicine.Medicine, error)
}
