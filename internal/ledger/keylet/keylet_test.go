package keylet

import (
	"testing"

	"github.com/dexcore/ledger/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestKeysAreNamespacedAndDeterministic(t *testing.T) {
	dot := types.NewFixedString("DOT")
	ksm := types.NewFixedString("KSM")
	acc := types.NewAccount([]byte("alice"))

	assert.Equal(t, AssetOwner(dot), AssetOwner(dot))
	assert.NotEqual(t, AssetOwner(dot), AssetOwner(ksm))
	assert.NotEqual(t, AssetOwner(dot), AssetInfo(dot))
	assert.NotEqual(t, Balance(dot, acc), AssetOwner(dot))
}

func TestOwnerIndexKeyIncludesAllThreeParts(t *testing.T) {
	acc := types.NewAccount([]byte("bob"))
	c1 := types.NewFixedString("C1")
	t1 := types.NewFixedString("T1")
	t2 := types.NewFixedString("T2")

	assert.NotEqual(t, OwnerIndex(acc, c1, t1), OwnerIndex(acc, c1, t2))
}
