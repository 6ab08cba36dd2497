// Package ledger is the balance collaborator every core module transfers
// and mints through. Out of scope for the core proper (spec.md treats it
// as an external black box), it still needs a concrete implementation to
// drive tests and the CLI, so we give it one backed by the same
// store.Sandbox every module writes state through.
package ledger

import (
	"github.com/dexcore/ledger/internal/codec"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Account is the authenticated caller identity every call carries.
type Account = types.Account

// Ledger is the balance collaborator surface from spec.md §3/§6. The
// core treats it as a black box that fails Withdraw/Transfer with
// ErrInsufficientBalance when the free balance is too small; it never
// inspects the ledger's storage layout directly.
type Ledger interface {
	FreeBalance(symbol types.FixedString, who Account) (types.Balance, error)
	TotalBalance(symbol types.FixedString, who Account) (types.Balance, error)
	TotalIssuance(symbol types.FixedString) (types.Balance, error)
	Deposit(symbol types.FixedString, who Account, amount types.Balance) error
	Withdraw(symbol types.FixedString, who Account, amount types.Balance) error
	Transfer(symbol types.FixedString, from, to Account, amount types.Balance) error
	EnsureCanWithdraw(symbol types.FixedString, who Account, amount types.Balance) error
	UpdateBalance(symbol types.FixedString, who Account, delta types.Amount) error
}

// issuanceRecord is a per-symbol running total, keyed separately from any
// individual account's balance record.
type issuanceRecord struct {
	Total string
}

type balanceRecord struct {
	Free string
}

func issuanceKey(symbol types.FixedString) []byte {
	return append([]byte{'$'}, symbol[:]...)
}

// StoreLedger implements Ledger over a store.StateStore (typically a
// *store.Sandbox opened by the caller for the duration of one call, so
// every balance mutation rolls back with the rest of that call's state
// on error).
type StoreLedger struct {
	s store.StateStore
}

// NewStoreLedger wraps s as a Ledger.
func NewStoreLedger(s store.StateStore) *StoreLedger {
	return &StoreLedger{s: s}
}

func (l *StoreLedger) readBalance(symbol types.FixedString, who Account) (types.Balance, error) {
	raw, found, err := l.s.Get(keylet.Balance(symbol, who))
	if err != nil {
		return types.Balance{}, err
	}
	if !found {
		return types.ZeroBalance(), nil
	}
	var rec balanceRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return types.Balance{}, err
	}
	return types.ParseBalance(rec.Free)
}

func (l *StoreLedger) writeBalance(symbol types.FixedString, who Account, bal types.Balance) error {
	buf, err := codec.Encode(balanceRecord{Free: bal.String()})
	if err != nil {
		return err
	}
	return l.s.Set(keylet.Balance(symbol, who), buf)
}

func (l *StoreLedger) readIssuance(symbol types.FixedString) (types.Balance, error) {
	raw, found, err := l.s.Get(issuanceKey(symbol))
	if err != nil {
		return types.Balance{}, err
	}
	if !found {
		return types.ZeroBalance(), nil
	}
	var rec issuanceRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return types.Balance{}, err
	}
	return types.ParseBalance(rec.Total)
}

func (l *StoreLedger) writeIssuance(symbol types.FixedString, total types.Balance) error {
	buf, err := codec.Encode(issuanceRecord{Total: total.String()})
	if err != nil {
		return err
	}
	return l.s.Set(issuanceKey(symbol), buf)
}

func (l *StoreLedger) FreeBalance(symbol types.FixedString, who Account) (types.Balance, error) {
	return l.readBalance(symbol, who)
}

func (l *StoreLedger) TotalBalance(symbol types.FixedString, who Account) (types.Balance, error) {
	return l.readBalance(symbol, who)
}

func (l *StoreLedger) TotalIssuance(symbol types.FixedString) (types.Balance, error) {
	return l.readIssuance(symbol)
}

func (l *StoreLedger) Deposit(symbol types.FixedString, who Account, amount types.Balance) error {
	bal, err := l.readBalance(symbol, who)
	if err != nil {
		return err
	}
	bal, err = bal.Add(amount)
	if err != nil {
		return err
	}
	issuance, err := l.readIssuance(symbol)
	if err != nil {
		return err
	}
	issuance, err = issuance.Add(amount)
	if err != nil {
		return err
	}
	if err := l.writeBalance(symbol, who, bal); err != nil {
		return err
	}
	return l.writeIssuance(symbol, issuance)
}

func (l *StoreLedger) Withdraw(symbol types.FixedString, who Account, amount types.Balance) error {
	if err := l.EnsureCanWithdraw(symbol, who, amount); err != nil {
		return err
	}
	bal, err := l.readBalance(symbol, who)
	if err != nil {
		return err
	}
	bal, err = bal.Sub(amount)
	if err != nil {
		return err
	}
	issuance, err := l.readIssuance(symbol)
	if err != nil {
		return err
	}
	issuance, err = issuance.Sub(amount)
	if err != nil {
		return err
	}
	if err := l.writeBalance(symbol, who, bal); err != nil {
		return err
	}
	return l.writeIssuance(symbol, issuance)
}

func (l *StoreLedger) Transfer(symbol types.FixedString, from, to Account, amount types.Balance) error {
	if err := l.EnsureCanWithdraw(symbol, from, amount); err != nil {
		return err
	}
	fromBal, err := l.readBalance(symbol, from)
	if err != nil {
		return err
	}
	fromBal, err = fromBal.Sub(amount)
	if err != nil {
		return err
	}
	toBal, err := l.readBalance(symbol, to)
	if err != nil {
		return err
	}
	toBal, err = toBal.Add(amount)
	if err != nil {
		return err
	}
	if err := l.writeBalance(symbol, from, fromBal); err != nil {
		return err
	}
	return l.writeBalance(symbol, to, toBal)
}

func (l *StoreLedger) EnsureCanWithdraw(symbol types.FixedString, who Account, amount types.Balance) error {
	bal, err := l.readBalance(symbol, who)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (l *StoreLedger) UpdateBalance(symbol types.FixedString, who Account, delta types.Amount) error {
	bal, err := l.readBalance(symbol, who)
	if err != nil {
		return err
	}
	newBal, err := bal.CheckedAdd(delta)
	if err != nil {
		if delta.Sign() < 0 {
			return ErrInsufficientBalance
		}
		return err
	}

	issuance, err := l.readIssuance(symbol)
	if err != nil {
		return err
	}
	newIssuance, err := issuance.CheckedAdd(delta)
	if err != nil {
		return err
	}

	if err := l.writeBalance(symbol, who, newBal); err != nil {
		return err
	}
	return l.writeIssuance(symbol, newIssuance)
}
