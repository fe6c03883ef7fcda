package session_test

import (
	"testing"

	"pharmacy/internal/adapters/out/session"
	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreMedicine(t *testing.T, stock int) *medicine.Medicine {
	t.Helper()

	price, err := kernel.NewMoney(12550)
	require.NoError(t, err)

	med, err := medicine.NewMedicine(kernel.NewUUID(), "Paracetamol 500mg", "Cipla", price, stock)
	require.NoError(t, err)

	return med
}

func TestInMemoryCartStore_Get_UnknownSessionReturnsEmptyCart(t *testing.T) {
	store := session.NewInMemoryCartStore()

	c, err := store.Get(t.Context(), "session-1")

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestInMemoryCartStore_PutThenGet_RoundTrips(t *testing.T) {
	store := session.NewInMemoryCartStore()
	med := testStoreMedicine(t, 40)

	c := cart.NewCart()
	_, err := c.Change(med, 3)
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), "session-1", c))

	loaded, err := store.Get(t.Context(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Quantity(med.ID()))
}

func TestInMemoryCartStore_StoredCartIsIsolatedFromLaterMutations(t *testing.T) {
	store := session.NewInMemoryCartStore()
	med := testStoreMedicine(t, 40)

	c := cart.NewCart()
	_, err := c.Change(med, 3)
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), "session-1", c))

	// Mutating the original cart must not affect the stored snapshot
	_, err = c.Change(med, 5)
	require.NoError(t, err)

	loaded, err := store.Get(t.Context(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Quantity(med.ID()))
}

func TestInMemoryCartStore_SessionsAreIndependent(t *testing.T) {
	store := session.NewInMemoryCartStore()
	med := testStoreMedicine(t, 40)

	c := cart.NewCart()
	_, err := c.Change(med, 2)
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), "session-1", c))

	other, err := store.Get(t.Context(), "session-2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestInMemoryCartStore_Delete_RemovesCart(t *testing.T) {
	store := session.NewInMemoryCartStore()
	med := testStoreMedicine(t, 40)

	c := cart.NewCart()
	_, err := c.Change(med, 2)
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), "session-1", c))

	require.NoError(t, store.Delete(t.Context(), "session-1"))

	loaded, err := store.Get(t.Context(), "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestInMemoryCartStore_BlankSessionIDIsRejected(t *testing.T) {
	store := session.NewInMemoryCartStore()

	_, err := store.Get(t.Context(), "")
	assert.Error(t, err)

	assert.Error(t, store.Put(t.Context(), "", cart.NewCart()))
	assert.Error(t, store.Delete(t.Context(), ""))
}
