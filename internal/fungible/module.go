package fungible

import (
	"github.com/dexcore/ledger/internal/codec"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Module implements the Fungible Assets entry points over a StateStore
// and a Ledger collaborator. Every exported method is a single call-site
// operation: callers open a store.Sandbox, build a Module over it, call
// one method, and commit the Sandbox only on a nil error.
type Module struct {
	store  store.StateStore
	ledger ledger.Ledger
	events *ledger.Bus
}

// New constructs a Module. events may be nil if the caller doesn't care
// about emitted events.
func New(s store.StateStore, l ledger.Ledger, events *ledger.Bus) *Module {
	return &Module{store: s, ledger: l, events: events}
}

func (m *Module) emit(kind string, payload map[string]string) {
	if m.events == nil {
		return
	}
	m.events.Emit(ledger.Event{Module: "fungible", Kind: kind, Payload: payload})
}

func (m *Module) getOwner(symbol types.FixedString) (types.Account, bool, error) {
	raw, found, err := m.store.Get(keylet.AssetOwner(symbol))
	if err != nil || !found {
		return types.Account{}, false, err
	}
	return types.NewAccount(raw), true, nil
}

func (m *Module) setOwner(symbol types.FixedString, owner types.Account) error {
	return m.store.Set(keylet.AssetOwner(symbol), owner[:])
}

func (m *Module) getInfo(symbol types.FixedString) (AssetInfo, bool, error) {
	raw, found, err := m.store.Get(keylet.AssetInfo(symbol))
	if err != nil || !found {
		return AssetInfo{}, false, err
	}
	var rec assetInfoRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return AssetInfo{}, false, err
	}
	return fromRecord(rec), true, nil
}

func (m *Module) setInfo(info AssetInfo) error {
	buf, err := codec.Encode(toRecord(info))
	if err != nil {
		return err
	}
	return m.store.Set(keylet.AssetInfo(info.Symbol), buf)
}

func (m *Module) getPermission(symbol types.FixedString) (allowed bool, set bool, err error) {
	raw, found, err := m.store.Get(keylet.AssetPermission(symbol))
	if err != nil || !found {
		return false, false, err
	}
	return raw[0] != 0, true, nil
}

// IsAssetExisted reports whether symbol has a registered owner.
func (m *Module) IsAssetExisted(symbol types.FixedString) (bool, error) {
	_, found, err := m.getOwner(symbol)
	return found, err
}

// IsAssetOwner reports whether account is the registered owner of symbol.
func (m *Module) IsAssetOwner(symbol types.FixedString, account types.Account) (bool, error) {
	owner, found, err := m.getOwner(symbol)
	if err != nil || !found {
		return false, err
	}
	return owner == account, nil
}

func (m *Module) ensureExists(symbol types.FixedString) error {
	exists, err := m.IsAssetExisted(symbol)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetNotExists
	}
	return nil
}

// RegisterAsset registers a new asset symbol, gives ownership to issuer,
// and deposits initial_supply to issuer if positive.
func (m *Module) RegisterAsset(
	issuer types.Account,
	symbol, name types.FixedString,
	precision uint8,
	isMintable, isBurnable bool,
	description string,
	initialSupply types.Balance,
) error {
	if !types.IsValidSymbol(symbol) {
		return ErrInvalidAssetSymbol
	}
	if !types.IsValidName(name) {
		return ErrInvalidAssetName
	}
	if precision > MaxPrecision {
		return ErrInvalidPrecision
	}

	exists, err := m.IsAssetExisted(symbol)
	if err != nil {
		return err
	}
	if exists {
		return ErrAssetAlreadyExists
	}

	if allowed, set, err := m.getPermission(symbol); err != nil {
		return err
	} else if set && !allowed {
		return ErrAssetNotAllowedToRegister
	}

	if err := m.setOwner(symbol, issuer); err != nil {
		return err
	}

	if !initialSupply.IsZero() {
		if err := m.ledger.Deposit(symbol, issuer, initialSupply); err != nil {
			return err
		}
	}

	if err := m.setInfo(AssetInfo{
		Symbol:      symbol,
		Name:        name,
		Precision:   precision,
		IsMintable:  isMintable,
		IsBurnable:  isBurnable,
		Description: description,
	}); err != nil {
		return err
	}

	m.emit("AssetRegistered", map[string]string{
		"symbol": symbol.String(),
		"issuer": issuer.String(),
	})
	return nil
}

// SetAssetPermission sets the registration gate for symbol. Callers must
// check root authority themselves; the core only validates the symbol.
func (m *Module) SetAssetPermission(symbol types.FixedString, allow bool) error {
	if !types.IsValidSymbol(symbol) {
		return ErrInvalidAssetSymbol
	}
	var b byte
	if allow {
		b = 1
	}
	return m.store.Set(keylet.AssetPermission(symbol), []byte{b})
}

// MintAsset deposits amount to issuer, who must be the asset's owner.
func (m *Module) MintAsset(issuer types.Account, symbol types.FixedString, amount types.Balance) error {
	if err := m.ensureExists(symbol); err != nil {
		return err
	}
	info, _, err := m.getInfo(symbol)
	if err != nil {
		return err
	}
	if !info.IsMintable {
		return ErrAssetIsNotMintable
	}
	isOwner, err := m.IsAssetOwner(symbol, issuer)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrInvalidOwner
	}

	if err := m.ledger.Deposit(symbol, issuer, amount); err != nil {
		return err
	}
	m.emit("Mint", map[string]string{
		"symbol": symbol.String(),
		"issuer": issuer.String(),
		"amount": amount.String(),
	})
	return nil
}

// BurnAsset withdraws amount from issuer, who must be the asset's owner.
func (m *Module) BurnAsset(issuer types.Account, symbol types.FixedString, amount types.Balance) error {
	if err := m.ensureExists(symbol); err != nil {
		return err
	}
	info, _, err := m.getInfo(symbol)
	if err != nil {
		return err
	}
	if !info.IsBurnable {
		return ErrAssetIsNotBurnable
	}
	isOwner, err := m.IsAssetOwner(symbol, issuer)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrInvalidOwner
	}

	if err := m.ledger.Withdraw(symbol, issuer, amount); err != nil {
		return err
	}
	m.emit("Burn", map[string]string{
		"symbol": symbol.String(),
		"issuer": issuer.String(),
		"amount": amount.String(),
	})
	return nil
}

// TransferAsset moves amount of symbol from from to to.
func (m *Module) TransferAsset(from types.Account, symbol types.FixedString, to types.Account, amount types.Balance) error {
	if err := m.ensureExists(symbol); err != nil {
		return err
	}
	free, err := m.ledger.FreeBalance(symbol, from)
	if err != nil {
		return err
	}
	if free.Cmp(amount) < 0 {
		return ErrNoEnoughBalance
	}
	if err := m.ledger.Transfer(symbol, from, to, amount); err != nil {
		return err
	}
	m.emit("Transfer", map[string]string{
		"symbol": symbol.String(),
		"from":   from.String(),
		"to":     to.String(),
		"amount": amount.String(),
	})
	return nil
}

// FreeBalance returns the free balance of who for symbol.
func (m *Module) FreeBalance(symbol types.FixedString, who types.Account) (types.Balance, error) {
	if err := m.ensureExists(symbol); err != nil {
		return types.Balance{}, err
	}
	return m.ledger.FreeBalance(symbol, who)
}

// TotalBalance returns the total balance of who for symbol.
func (m *Module) TotalBalance(symbol types.FixedString, who types.Account) (types.Balance, error) {
	if err := m.ensureExists(symbol); err != nil {
		return types.Balance{}, err
	}
	return m.ledger.TotalBalance(symbol, who)
}

// TotalIssuance returns the total issuance of symbol.
func (m *Module) TotalIssuance(symbol types.FixedString) (types.Balance, error) {
	if err := m.ensureExists(symbol); err != nil {
		return types.Balance{}, err
	}
	return m.ledger.TotalIssuance(symbol)
}

// GetAssetInfo returns the static AssetInfo for symbol.
func (m *Module) GetAssetInfo(symbol types.FixedString) (AssetInfo, error) {
	info, found, err := m.getInfo(symbol)
	if err != nil {
		return AssetInfo{}, err
	}
	if !found {
		return AssetInfo{}, ErrAssetNotExists
	}
	return info, nil
}
