package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

func newTestLedger() (*StoreLedger, *store.Sandbox) {
	sb := store.NewSandbox(store.NewMemoryStore())
	return NewStoreLedger(sb), sb
}

func TestDepositAndFreeBalance(t *testing.T) {
	l, _ := newTestLedger()
	dot := types.NewFixedString("DOT")
	alice := types.NewAccount([]byte("alice"))

	require.NoError(t, l.Deposit(dot, alice, types.NewBalance(100)))

	bal, err := l.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.Equal(t, "100", bal.String())

	issuance, err := l.TotalIssuance(dot)
	require.NoError(t, err)
	assert.Equal(t, "100", issuance.String())
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	l, _ := newTestLedger()
	dot := types.NewFixedString("DOT")
	alice := types.NewAccount([]byte("alice"))

	err := l.Withdraw(dot, alice, types.NewBalance(1))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestTransferMovesBalanceBetweenAccounts(t *testing.T) {
	l, _ := newTestLedger()
	dot := types.NewFixedString("DOT")
	alice := types.NewAccount([]byte("alice"))
	bob := types.NewAccount([]byte("bob"))

	require.NoError(t, l.Deposit(dot, alice, types.NewBalance(100)))
	require.NoError(t, l.Transfer(dot, alice, bob, types.NewBalance(40)))

	aliceBal, err := l.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.Equal(t, "60", aliceBal.String())

	bobBal, err := l.FreeBalance(dot, bob)
	require.NoError(t, err)
	assert.Equal(t, "40", bobBal.String())
}

func TestUpdateBalanceSignedDelta(t *testing.T) {
	l, _ := newTestLedger()
	dot := types.NewFixedString("DOT")
	alice := types.NewAccount([]byte("alice"))

	require.NoError(t, l.Deposit(dot, alice, types.NewBalance(100)))
	require.NoError(t, l.UpdateBalance(dot, alice, types.NewAmount(-30)))

	bal, err := l.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.Equal(t, "70", bal.String())

	err = l.UpdateBalance(dot, alice, types.NewAmount(-1000))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestSandboxRollbackDiscardsLedgerWrites(t *testing.T) {
	parent := store.NewMemoryStore()
	sb := store.NewSandbox(parent)
	l := NewStoreLedger(sb)

	dot := types.NewFixedString("DOT")
	alice := types.NewAccount([]byte("alice"))
	require.NoError(t, l.Deposit(dot, alice, types.NewBalance(50)))

	// never call sb.Commit(): simulates the call failing later.

	parentLedger := NewStoreLedger(parent)
	bal, err := parentLedger.FreeBalance(dot, alice)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())
}
