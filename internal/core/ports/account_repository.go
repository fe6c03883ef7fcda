package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/account"
	"pharmacy/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account
// aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, acc *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, acc *account.Account) error

	// Get retrieves an account by its unique identifier.
	// Returns ObjectNotFoundError when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its login name.
	// Returns ObjectNotFoundError when no such account exists.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
