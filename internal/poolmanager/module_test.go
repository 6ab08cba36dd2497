package poolmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/amm"
	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

func newModule() (*Module, *fungible.Module) {
	sb := store.NewSandbox(store.NewMemoryStore())
	l := ledger.NewStoreLedger(sb)
	assets := fungible.New(sb, l, nil)
	ammModule := amm.New(sb, l, assets, nil)
	return New(sb, ammModule), assets
}

func TestCreateAmmPoolDispatches(t *testing.T) {
	pm, assets := newModule()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	pid := types.NewFixedString("P")

	require.NoError(t, assets.RegisterAsset(alice, dot, dot, 18, true, true, "", types.NewBalance(0)))
	require.NoError(t, pm.CreateAmmPool(alice, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(0),
	}, ""))

	err := pm.CreateAmmPool(alice, pid, 30, 10, nil, "")
	assert.ErrorIs(t, err, ErrPoolAlreadyExists)
}

func TestUnknownPoolReturnsPoolNotExists(t *testing.T) {
	pm, _ := newModule()
	pid := types.NewFixedString("NOPE")
	alice := types.NewAccount([]byte("alice"))

	err := pm.DestroyPool(alice, pid)
	assert.ErrorIs(t, err, ErrPoolNotExists)

	fee, err := pm.GetTotalFeeFromPool(pid)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), fee)
}
