package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

func TestAddComputesTotals(t *testing.T) {
	c := New(session.NewMemory())

	item, err := c.Add(2, "Business Hosting", 9.99, 12, false)
	require.NoError(t, err)
	require.Equal(t, 119.88, item.Subtotal)
	require.Equal(t, 11.99, item.VAT)
	require.Equal(t, 131.87, item.Total)
}

func TestAddDedicatedIPSurcharge(t *testing.T) {
	c := New(session.NewMemory())

	item, err := c.Add(1, "Shared Hosting", 4.99, 6, true)
	require.NoError(t, err)
	// (4.99 + 5.00) * 6
	require.Equal(t, 59.94, item.Subtotal)
	require.True(t, item.DedicatedIP)
}

func TestSingleItemInvariant(t *testing.T) {
	store := session.NewMemory()
	c := New(store)

	_, err := c.Add(1, "Shared Hosting", 4.99, 1, false)
	require.NoError(t, err)
	_, err = c.Add(3, "Managed VPS", 24.99, 3, false)
	require.NoError(t, err)

	item, err := c.Get()
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, uint(3), item.ProductID, "a second add replaces the first item")
}

func TestAddThenRemoveEmptiesCartAndStorage(t *testing.T) {
	store := session.NewMemory()
	c := New(store)

	_, err := c.Add(1, "Shared Hosting", 4.99, 12, false)
	require.NoError(t, err)

	item, err := c.Get()
	require.NoError(t, err)
	require.NotNil(t, item)

	require.NoError(t, c.Remove())

	item, err = c.Get()
	require.NoError(t, err)
	require.Nil(t, item)

	_, err = store.Get(session.KeyCart)
	require.ErrorIs(t, err, session.ErrNotFound, "the persisted cart entry must be deleted")
}

func TestGetEmptyCart(t *testing.T) {
	c := New(session.NewMemory())

	item, err := c.Get()
	require.NoError(t, err)
	require.Nil(t, item)
}
