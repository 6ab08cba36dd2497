package mocks

import (
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/types"
)

func TestMockLedgerSatisfiesInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockLedger(ctrl)

	var _ ledger.Ledger = m

	who := types.NewAccount([]byte("alice"))
	symbol := types.NewFixedString("DOT")
	amount := types.NewBalance(100)

	m.EXPECT().Deposit(symbol, who, amount).Return(nil)
	require.NoError(t, m.Deposit(symbol, who, amount))

	m.EXPECT().FreeBalance(symbol, who).Return(amount, nil)
	got, err := m.FreeBalance(symbol, who)
	require.NoError(t, err)
	assert.Equal(t, amount, got)
}
