package amm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

type harness struct {
	sb     *store.Sandbox
	assets *fungible.Module
	amm    *Module
}

func newHarness() harness {
	sb := store.NewSandbox(store.NewMemoryStore())
	l := ledger.NewStoreLedger(sb)
	assets := fungible.New(sb, l, nil)
	return harness{sb: sb, assets: assets, amm: New(sb, l, assets, nil)}
}

func registerAsset(t *testing.T, h harness, issuer types.Account, symbol string, supply types.Balance) {
	t.Helper()
	require.NoError(t, h.assets.RegisterAsset(
		issuer, types.NewFixedString(symbol), types.NewFixedString(symbol),
		18, true, true, "", supply,
	))
}

func TestRegisterPoolAndSeedLiquidity(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, alice, "DOT", types.NewBalance(0))
	registerAsset(t, h, alice, "KSM", types.NewBalance(0))
	require.NoError(t, h.assets.MintAsset(alice, dot, types.NewBalance(1000)))
	require.NoError(t, h.assets.MintAsset(alice, ksm, types.NewBalance(1000)))
	require.NoError(t, h.assets.TransferAsset(alice, dot, bob, types.NewBalance(1000)))
	require.NoError(t, h.assets.TransferAsset(alice, ksm, bob, types.NewBalance(1000)))

	err := h.amm.RegisterPool(bob, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(100),
		ksm: types.NewBalance(30),
	}, "")
	require.NoError(t, err)

	total, err := h.amm.ShareTotalBalance(pid)
	require.NoError(t, err)
	assert.Equal(t, InitSharesSupply.String(), total.String())

	bobShares, err := h.amm.ShareBalanceOf(pid, bob)
	require.NoError(t, err)
	assert.Equal(t, InitSharesSupply.String(), bobShares.String())

	dotBal, err := h.assets.FreeBalance(dot, bob)
	require.NoError(t, err)
	assert.Equal(t, "900", dotBal.String())
}

func TestRegisterPoolDuplicate(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	pid := types.NewFixedString("P")

	registerAsset(t, h, alice, "DOT", types.NewBalance(0))
	symbols := map[types.FixedString]types.Balance{dot: types.NewBalance(0)}
	require.NoError(t, h.amm.RegisterPool(alice, pid, 30, 10, symbols, ""))

	err := h.amm.RegisterPool(alice, pid, 30, 10, symbols, "")
	assert.ErrorIs(t, err, ErrPoolAlreadyExists)
}

func TestRegisterPoolFeeBounds(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	dot := types.NewFixedString("DOT")
	pid := types.NewFixedString("P")
	registerAsset(t, h, alice, "DOT", types.NewBalance(0))
	symbols := map[types.FixedString]types.Balance{dot: types.NewBalance(0)}

	err := h.amm.RegisterPool(alice, pid, FeeDivisor, 10, symbols, "")
	assert.ErrorIs(t, err, ErrTooLargeFee)

	err = h.amm.RegisterPool(alice, pid, 30, 40, symbols, "")
	assert.ErrorIs(t, err, ErrTooLargeFee)
}

func TestSwapFormulaScenario(t *testing.T) {
	h := newHarness()
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, bob, "DOT", types.NewBalance(1000))
	registerAsset(t, h, bob, "KSM", types.NewBalance(1000))

	require.NoError(t, h.amm.RegisterPool(bob, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(100),
		ksm: types.NewBalance(30),
	}, ""))

	out, err := h.amm.GetSwapReturnAsset(pid, ksm, types.NewBalance(10), dot)
	require.NoError(t, err)
	assert.Equal(t, "24", out.String())
}

func TestSwapPreservesReserveOutIncrementBug(t *testing.T) {
	h := newHarness()
	bob := types.NewAccount([]byte("bob"))
	carol := types.NewAccount([]byte("carol"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, bob, "DOT", types.NewBalance(1000))
	registerAsset(t, h, bob, "KSM", types.NewBalance(1000))
	require.NoError(t, h.assets.TransferAsset(bob, ksm, carol, types.NewBalance(10)))

	require.NoError(t, h.amm.RegisterPool(bob, pid, 30, 0, map[types.FixedString]types.Balance{
		dot: types.NewBalance(100),
		ksm: types.NewBalance(30),
	}, ""))

	reservesBefore, err := h.amm.GetSymbolData(pid)
	require.NoError(t, err)
	dotBefore := reservesBefore[dot]

	err = h.amm.SwapAsset(carol, pid, ksm, types.NewBalance(10), dot, types.NewBalance(0))
	require.NoError(t, err)

	reservesAfter, err := h.amm.GetSymbolData(pid)
	require.NoError(t, err)

	// BUG: reserve_out (DOT, the output side) grows instead of
	// shrinking even though the trader was paid out of it.
	assert.True(t, reservesAfter[dot].Cmp(dotBefore) > 0)

	carolDot, err := h.assets.FreeBalance(dot, carol)
	require.NoError(t, err)
	assert.Equal(t, "24", carolDot.String())
}

func TestSwapProtocolShareMintOverwritesInsteadOfAccumulating(t *testing.T) {
	h := newHarness()
	bob := types.NewAccount([]byte("bob"))
	carol := types.NewAccount([]byte("carol"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, bob, "DOT", types.NewBalance(100000))
	registerAsset(t, h, bob, "KSM", types.NewBalance(100000))
	require.NoError(t, h.assets.TransferAsset(bob, ksm, carol, types.NewBalance(1000)))

	require.NoError(t, h.amm.RegisterPool(bob, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(10000),
		ksm: types.NewBalance(10000),
	}, ""))

	require.NoError(t, h.amm.SwapAsset(carol, pid, ksm, types.NewBalance(500), dot, types.NewBalance(0)))
	firstShares, err := h.amm.ShareBalanceOf(pid, carol)
	require.NoError(t, err)

	require.NoError(t, h.amm.SwapAsset(carol, pid, ksm, types.NewBalance(500), dot, types.NewBalance(0)))
	secondShares, err := h.amm.ShareBalanceOf(pid, carol)
	require.NoError(t, err)

	// BUG: the second swap's fee-skim mint overwrites carol's share
	// balance rather than adding to it, so the second mint alone
	// never exceeds the first mint doubled — it replaces, not
	// accumulates.
	doubled, err := firstShares.Add(firstShares)
	require.NoError(t, err)
	assert.True(t, secondShares.Cmp(doubled) < 0)
}

func TestUnregisterPoolRequiresZeroShares(t *testing.T) {
	h := newHarness()
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, bob, "DOT", types.NewBalance(1000))
	registerAsset(t, h, bob, "KSM", types.NewBalance(1000))
	require.NoError(t, h.amm.RegisterPool(bob, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(100),
		ksm: types.NewBalance(30),
	}, ""))

	err := h.amm.UnregisterPool(bob, pid)
	assert.ErrorIs(t, err, ErrHasRemainingShares)
}

func TestRemoveLiquidityDoesNotCreditLedger(t *testing.T) {
	h := newHarness()
	bob := types.NewAccount([]byte("bob"))
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	pid := types.NewFixedString("P")

	registerAsset(t, h, bob, "DOT", types.NewBalance(1000))
	registerAsset(t, h, bob, "KSM", types.NewBalance(1000))
	require.NoError(t, h.amm.RegisterPool(bob, pid, 30, 10, map[types.FixedString]types.Balance{
		dot: types.NewBalance(100),
		ksm: types.NewBalance(30),
	}, ""))

	dotBalBefore, err := h.assets.FreeBalance(dot, bob)
	require.NoError(t, err)

	require.NoError(t, h.amm.RemoveLiquidityFromPool(bob, pid, InitSharesSupply, map[types.FixedString]types.Balance{
		dot: types.NewBalance(0),
		ksm: types.NewBalance(0),
	}))

	dotBalAfter, err := h.assets.FreeBalance(dot, bob)
	require.NoError(t, err)
	assert.Equal(t, dotBalBefore.String(), dotBalAfter.String())

	total, err := h.amm.ShareTotalBalance(pid)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
