package fungible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

func newModule() (*Module, *ledger.Bus) {
	sb := store.NewSandbox(store.NewMemoryStore())
	l := ledger.NewStoreLedger(sb)
	bus := ledger.NewBus()
	return New(sb, l, bus), bus
}

func TestRegisterAssetAndDuplicate(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")

	err := m.RegisterAsset(alice, dot, types.NewFixedString("polkadot"), 18, true, true, "", types.ZeroBalance())
	require.NoError(t, err)

	err = m.RegisterAsset(alice, dot, types.NewFixedString("polkadot"), 18, true, true, "", types.ZeroBalance())
	assert.ErrorIs(t, err, ErrAssetAlreadyExists)
}

func TestRegisterAssetValidation(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))

	err := m.RegisterAsset(alice, types.NewFixedString(".bad"), types.NewFixedString("n"), 18, true, true, "", types.ZeroBalance())
	assert.ErrorIs(t, err, ErrInvalidAssetSymbol)

	err = m.RegisterAsset(alice, types.NewFixedString("DOT"), types.NewFixedString(".bad"), 18, true, true, "", types.ZeroBalance())
	assert.ErrorIs(t, err, ErrInvalidAssetName)

	err = m.RegisterAsset(alice, types.NewFixedString("DOT"), types.NewFixedString("n"), 19, true, true, "", types.ZeroBalance())
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestMintGuardedByOwner(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")

	require.NoError(t, m.RegisterAsset(alice, dot, types.NewFixedString("polkadot"), 18, true, true, "", types.ZeroBalance()))
	require.NoError(t, m.MintAsset(alice, dot, types.NewBalance(100)))

	bal, err := m.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.Equal(t, "100", bal.String())

	err = m.MintAsset(bob, dot, types.NewBalance(10))
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestMintNotMintable(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	require.NoError(t, m.RegisterAsset(alice, dot, types.NewFixedString("n"), 18, false, true, "", types.ZeroBalance()))

	err := m.MintAsset(alice, dot, types.NewBalance(1))
	assert.ErrorIs(t, err, ErrAssetIsNotMintable)
}

func TestBurnRoundTrip(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	require.NoError(t, m.RegisterAsset(alice, dot, types.NewFixedString("n"), 18, true, true, "", types.ZeroBalance()))

	require.NoError(t, m.MintAsset(alice, dot, types.NewBalance(100)))
	require.NoError(t, m.BurnAsset(alice, dot, types.NewBalance(100)))

	bal, err := m.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}

func TestTransferAssetInsufficientBalance(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")
	require.NoError(t, m.RegisterAsset(alice, dot, types.NewFixedString("n"), 18, true, true, "", types.ZeroBalance()))

	err := m.TransferAsset(alice, dot, bob, types.NewBalance(1))
	assert.ErrorIs(t, err, ErrNoEnoughBalance)
}

func TestRegisterAssetWithInitialSupply(t *testing.T) {
	m, _ := newModule()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	require.NoError(t, m.RegisterAsset(alice, dot, types.NewFixedString("n"), 18, true, true, "", types.NewBalance(500)))

	issuance, err := m.TotalIssuance(dot)
	require.NoError(t, err)
	assert.Equal(t, "500", issuance.String())
}
