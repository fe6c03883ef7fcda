package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrCartSessionIDIsRequired = errors.New("session id is required")
)

// GetCartQuery resolves the session cart against live catalog data:
// current prices, names, and per-line subtotals.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart view query.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the owning session.
func (q GetCartQuery) SessionID() string {
	return q.sessionID
}

func (q *GetCartQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrCartSessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}

// CartLineView is one resolved cart line with the medicine's current
// price. Cart views always show live prices; snapshots happen at checkout.
type CartLineView struct {
	MedicineID    kernel.UUID
	MedicineName  string
	PriceMinor    int64
	Quantity      int
	SubtotalMinor int64
}

// CartView is the resolved cart read model.
type CartView struct {
	Lines      []CartLineView
	TotalMinor int64
}
