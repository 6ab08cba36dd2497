package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxBuffersUntilCommit(t *testing.T) {
	parent := NewMemoryStore()
	require.NoError(t, parent.Set([]byte("a"), []byte("1")))

	sb := NewSandbox(parent)
	require.NoError(t, sb.Set([]byte("a"), []byte("2")))
	require.NoError(t, sb.Set([]byte("b"), []byte("3")))

	v, found, err := parent.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", string(v), "parent must not observe sandbox writes before commit")

	v, found, err = sb.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2", string(v), "sandbox must observe its own writes")

	require.NoError(t, sb.Commit())

	v, found, err = parent.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2", string(v))

	v, found, err = parent.Get([]byte("b"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "3", string(v))
}

func TestSandboxDiscardIsRollback(t *testing.T) {
	parent := NewMemoryStore()
	require.NoError(t, parent.Set([]byte("a"), []byte("1")))

	sb := NewSandbox(parent)
	require.NoError(t, sb.Set([]byte("a"), []byte("2")))
	require.NoError(t, sb.Delete([]byte("a")))

	// simulate an error: the caller never calls Commit, just drops sb.
	v, found, err := parent.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", string(v))
}

func TestSandboxDeleteThenGet(t *testing.T) {
	parent := NewMemoryStore()
	require.NoError(t, parent.Set([]byte("a"), []byte("1")))

	sb := NewSandbox(parent)
	require.NoError(t, sb.Delete([]byte("a")))

	_, found, err := sb.Get([]byte("a"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSandboxIterateMergesParentAndBuffered(t *testing.T) {
	parent := NewMemoryStore()
	require.NoError(t, parent.Set([]byte("p:1"), []byte("a")))
	require.NoError(t, parent.Set([]byte("p:2"), []byte("b")))

	sb := NewSandbox(parent)
	require.NoError(t, sb.Set([]byte("p:2"), []byte("b2")))
	require.NoError(t, sb.Set([]byte("p:3"), []byte("c")))
	require.NoError(t, sb.Delete([]byte("p:1")))

	seen := map[string]string{}
	require.NoError(t, sb.Iterate([]byte("p:"), func(k, v []byte) bool {
		seen[string(k)] = string(v)
		return true
	}))

	assert.Equal(t, map[string]string{"p:2": "b2", "p:3": "c"}, seen)
}
