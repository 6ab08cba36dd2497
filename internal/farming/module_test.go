package farming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/nft"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

type harness struct {
	assets *fungible.Module
	nfts   *nft.Module
	farms  *Module
}

func newHarness() harness {
	sb := store.NewSandbox(store.NewMemoryStore())
	l := ledger.NewStoreLedger(sb)
	assets := fungible.New(sb, l, nil)
	nfts := nft.New(sb, nil)
	return harness{assets: assets, nfts: nfts, farms: New(sb, assets, nfts, nil)}
}

func ptr(f types.FixedString) *types.FixedString { return &f }
func balPtr(b types.Balance) *types.Balance       { return &b }

func TestFarmFTRewardScenario(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	eve := types.NewAccount([]byte("eve"))
	ksm := types.NewFixedString("KSM")
	dot := types.NewFixedString("DOT")
	f1 := types.NewFixedString("F1")

	require.NoError(t, h.assets.RegisterAsset(alice, ksm, ksm, 18, true, true, "", types.NewBalance(100)))
	require.NoError(t, h.assets.RegisterAsset(alice, dot, dot, 18, true, true, "", types.NewBalance(100)))
	require.NoError(t, h.assets.TransferAsset(alice, dot, bob, types.NewBalance(20)))
	require.NoError(t, h.assets.TransferAsset(alice, dot, eve, types.NewBalance(20)))

	require.NoError(t, h.farms.CreateFarm(alice, f1, ksm, ptr(dot), nil, nil, types.NewBalance(10), 2))

	require.NoError(t, h.farms.StakeAsset(bob, f1, balPtr(types.NewBalance(20)), 0))
	require.NoError(t, h.farms.StakeAsset(eve, f1, balPtr(types.NewBalance(20)), 0))

	bobRewards, err := h.farms.UpdateRewards(bob, f1, 20)
	require.NoError(t, err)
	assert.Equal(t, "200", bobRewards.String())

	eveRewards, err := h.farms.UpdateRewards(eve, f1, 20)
	require.NoError(t, err)
	assert.Equal(t, "200", eveRewards.String())
}

func TestNFTFarmExclusivity(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	carol := types.NewAccount([]byte("carol"))
	ksm := types.NewFixedString("KSM")
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")
	f2 := types.NewFixedString("F2")

	require.NoError(t, h.assets.RegisterAsset(alice, ksm, ksm, 18, true, true, "", types.NewBalance(0)))
	require.NoError(t, h.nfts.CreateNftClass(bob, c1, ""))
	require.NoError(t, h.nfts.MintToken(bob, c1, t1, "", ""))

	require.NoError(t, h.farms.CreateFarm(alice, f2, ksm, nil, ptr(c1), ptr(t1), types.NewBalance(5), 1))
	require.NoError(t, h.farms.StakeAsset(bob, f2, nil, 0))

	err := h.farms.StakeAsset(carol, f2, nil, 0)
	assert.ErrorIs(t, err, ErrNFTFarmerAlreadyInUse)
}

func TestDestroyFarmRequiresNoStake(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	ksm := types.NewFixedString("KSM")
	dot := types.NewFixedString("DOT")
	f1 := types.NewFixedString("F1")

	require.NoError(t, h.assets.RegisterAsset(alice, ksm, ksm, 18, true, true, "", types.NewBalance(0)))
	require.NoError(t, h.assets.RegisterAsset(alice, dot, dot, 18, true, true, "", types.NewBalance(0)))
	require.NoError(t, h.assets.MintAsset(alice, dot, types.NewBalance(10)))
	require.NoError(t, h.assets.TransferAsset(alice, dot, bob, types.NewBalance(10)))

	require.NoError(t, h.farms.CreateFarm(alice, f1, ksm, ptr(dot), nil, nil, types.NewBalance(10), 1))
	require.NoError(t, h.farms.StakeAsset(bob, f1, balPtr(types.NewBalance(10)), 0))

	err := h.farms.DestroyFarm(alice, f1)
	assert.ErrorIs(t, err, ErrFarmInStaking)

	require.NoError(t, h.farms.UnstakeAsset(bob, f1, nil, 1))
	require.NoError(t, h.farms.DestroyFarm(alice, f1))
}

func TestUnstakeRemovesNFTFarmerOnceEmpty(t *testing.T) {
	h := newHarness()
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))
	ksm := types.NewFixedString("KSM")
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")
	f2 := types.NewFixedString("F2")

	require.NoError(t, h.assets.RegisterAsset(alice, ksm, ksm, 18, true, true, "", types.NewBalance(0)))
	require.NoError(t, h.nfts.CreateNftClass(bob, c1, ""))
	require.NoError(t, h.nfts.MintToken(bob, c1, t1, "", ""))
	require.NoError(t, h.farms.CreateFarm(alice, f2, ksm, nil, ptr(c1), ptr(t1), types.NewBalance(5), 1))
	require.NoError(t, h.farms.StakeAsset(bob, f2, nil, 0))

	require.NoError(t, h.farms.UnstakeAsset(bob, f2, nil, 0))

	existed, err := h.farms.IsFarmerExisted(f2, bob)
	require.NoError(t, err)
	assert.False(t, existed)
}
