package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/store"
)

func TestCachedStoreServesCachedValue(t *testing.T) {
	inner := store.NewMemoryStore()
	require.NoError(t, inner.Set([]byte("k"), []byte("v1")))

	c, err := New(inner, 4)
	require.NoError(t, err)

	v, found, err := c.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v1", string(v))

	// mutate the underlying store directly, bypassing the cache, to
	// prove the second Get is served from cache.
	require.NoError(t, inner.Set([]byte("k"), []byte("v2")))

	v, found, err = c.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v1", string(v))
}

func TestCachedStoreInvalidatesOnWrite(t *testing.T) {
	inner := store.NewMemoryStore()
	c, err := New(inner, 4)
	require.NoError(t, err)

	_, found, err := c.Get([]byte("k"))
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set([]byte("k"), []byte("v1")))

	v, found, err := c.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v1", string(v))
}
