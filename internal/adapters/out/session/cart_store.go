// Package session provides the in-memory implementation of the per-session
// cart store. Carts are ephemeral by design and do not survive a restart.
package session

import (
	"context"
	"sync"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/pkg/errs"
)

// InMemoryCartStore keeps session carts in a mutex-guarded map. Carts are
// stored as plain entry snapshots so no caller can mutate a stored cart
// without going through Put.
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Entry
}

// NewInMemoryCartStore creates an empty cart store.
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		carts: make(map[string][]cart.Entry),
	}
}

// Get returns the cart for a session, creating an empty one on first
// access.
func (s *InMemoryCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	s.mu.RLock()
	entries, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return cart.NewCart(), nil
	}

	return cart.RestoreCart(entries), nil
}

// Put stores the session's cart, replacing any previous state.
func (s *InMemoryCartStore) Put(_ context.Context, sessionID string, c *cart.Cart) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	if c == nil {
		return errs.NewValueIsRequiredError("cart")
	}

	s.mu.Lock()
	s.carts[sessionID] = c.Entries()
	s.mu.Unlock()

	return nil
}

// Delete removes the session's cart entirely.
func (s *InMemoryCartStore) Delete(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	return nil
}
