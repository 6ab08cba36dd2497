package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/config"
	"github.com/dexcore/ledger/internal/types"
)

func TestAssetRegisterAndMint(t *testing.T) {
	t.Setenv("DEXNODE_STORE_DRIVER", "memory")
	cfg, err := config.Load("")
	require.NoError(t, err)

	n, err := openNode(cfg)
	require.NoError(t, err)
	defer n.close()

	supply := mustBalance(t, "1000")
	require.NoError(t, n.Assets.RegisterAsset(account("alice"), fixed("DOT"), fixed("Polkadot"), 10, true, true, "", supply))
	require.NoError(t, n.commit(0))

	exists, err := n.Assets.IsAssetExisted(fixed("DOT"))
	require.NoError(t, err)
	assert.True(t, exists)

	mintAmount := mustBalance(t, "500")
	require.NoError(t, n.Assets.MintAsset(account("alice"), fixed("DOT"), mintAmount))
	require.NoError(t, n.commit(0))

	total, err := n.Assets.TotalIssuance(fixed("DOT"))
	require.NoError(t, err)
	assert.Equal(t, "1500", total.String())
}

func mustBalance(t *testing.T, s string) types.Balance {
	t.Helper()
	v, err := balance(s)
	require.NoError(t, err)
	return v
}
