package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

func newModule() *Module {
	sb := store.NewSandbox(store.NewMemoryStore())
	return New(sb, nil)
}

func TestNftTransferAndReTransfer(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))
	require.NoError(t, m.TransferToken(alice, bob, c1, t1))

	isBob, err := m.IsOwner(bob, c1, t1)
	require.NoError(t, err)
	assert.True(t, isBob)

	isAlice, err := m.IsOwner(alice, c1, t1)
	require.NoError(t, err)
	assert.False(t, isAlice)

	err = m.TransferToken(alice, bob, c1, t1)
	assert.ErrorIs(t, err, ErrInvalidTokenOwner)
}

func TestMintDuplicateWithinClass(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))

	err := m.MintToken(alice, c1, t1, "", "")
	assert.ErrorIs(t, err, ErrTokenIDAlreadyExisted)
}

func TestMintDuplicateAcrossClassesRejectedGlobally(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	c1 := types.NewFixedString("C1")
	c2 := types.NewFixedString("C2")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.CreateNftClass(alice, c2, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))

	err := m.MintToken(alice, c2, t1, "", "")
	assert.ErrorIs(t, err, ErrTokenIDAlreadyExistsGlobally)
}

func TestBurnRequiresDualOwnership(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))
	require.NoError(t, m.TransferToken(alice, bob, c1, t1))

	// Bob owns the token now, but class owner is still Alice.
	err := m.BurnToken(bob, c1, t1)
	assert.ErrorIs(t, err, ErrNoClassPermission)
}

func TestDestroyClassRequiresEmpty(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))

	err := m.DestroyNftClass(alice, c1)
	assert.ErrorIs(t, err, ErrCannotDestroyNftClass)

	require.NoError(t, m.BurnToken(alice, c1, t1))
	require.NoError(t, m.DestroyNftClass(alice, c1))
}

func TestTransferToSelfIsNoop(t *testing.T) {
	m := newModule()
	alice := types.NewAccount([]byte("alice"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")

	require.NoError(t, m.CreateNftClass(alice, c1, ""))
	require.NoError(t, m.MintToken(alice, c1, t1, "", ""))
	require.NoError(t, m.TransferToken(alice, alice, c1, t1))

	isAlice, err := m.IsOwner(alice, c1, t1)
	require.NoError(t, err)
	assert.True(t, isAlice)
}
