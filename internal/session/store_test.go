package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	bolt, err := OpenBolt(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"bolt":   bolt,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(KeyToken)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(KeyToken, []byte("abc")))
			v, err := store.Get(KeyToken)
			require.NoError(t, err)
			require.Equal(t, []byte("abc"), v)

			// Last write wins.
			require.NoError(t, store.Set(KeyToken, []byte("def")))
			v, _ = store.Get(KeyToken)
			require.Equal(t, []byte("def"), v)

			require.NoError(t, store.Delete(KeyToken))
			_, err = store.Get(KeyToken)
			require.ErrorIs(t, err, ErrNotFound)

			// Deleting an absent key is not an error.
			require.NoError(t, store.Delete(KeyToken))
		})
	}
}

func TestSessionAuthLifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			sess := New(store)
			require.False(t, sess.Authenticated())
			require.Empty(t, sess.Token())

			require.NoError(t, sess.SetToken("tok-1"))
			require.NoError(t, sess.SetUser(map[string]any{"id": 1, "role": "admin"}))
			require.True(t, sess.Authenticated())

			var user struct {
				ID   int    `json:"id"`
				Role string `json:"role"`
			}
			ok, err := sess.User(&user)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "admin", user.Role)

			// Clear wipes auth but leaves the cart entry alone.
			require.NoError(t, store.Set(KeyCart, []byte(`{"productId":1}`)))
			require.NoError(t, sess.Clear())
			require.False(t, sess.Authenticated())
			ok, err = sess.User(&user)
			require.NoError(t, err)
			require.False(t, ok)

			_, err = store.Get(KeyCart)
			require.NoError(t, err)
		})
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyToken, []byte("persisted")))
	require.NoError(t, store.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), v)
}
