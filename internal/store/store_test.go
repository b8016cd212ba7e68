package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// storeContract exercises the Store behaviors every implementation must share.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing key
	_, err := s.Get(ctx, "cart:42")
	require.ErrorIs(t, err, ErrSlotNotFound)

	// Write then read back
	require.NoError(t, s.Put(ctx, "cart:42", []byte(`[{"qty":1}]`)))
	value, err := s.Get(ctx, "cart:42")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"qty":1}]`), value)

	// Overwrite
	require.NoError(t, s.Put(ctx, "cart:42", []byte(`[]`)))
	value, err = s.Get(ctx, "cart:42")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), value)

	// Keys are isolated
	require.NoError(t, s.Put(ctx, "cart:7", []byte(`[{"qty":3}]`)))
	value, err = s.Get(ctx, "cart:42")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), value)

	// Delete is idempotent
	require.NoError(t, s.Delete(ctx, "cart:42"))
	require.NoError(t, s.Delete(ctx, "cart:42"))
	_, err = s.Get(ctx, "cart:42")
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Put(ctx, "k", []byte("abc")))

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'x'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	storeContract(t, s)
}
