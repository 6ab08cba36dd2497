// Package poolmanager is a thin dispatcher over pool kinds: it tags
// each pool ID with its kind at creation and forwards every other
// operation to the matching pool implementation. Today AMM is the only
// kind; adding one means a new types.PoolKind variant and a new arm in
// each of this package's switches — no base class, no virtual table.
package poolmanager

import (
	"github.com/dexcore/ledger/internal/amm"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Module dispatches pool operations to the AMM module by pool kind.
type Module struct {
	store store.StateStore
	amm   *amm.Module
}

// New constructs a Module over the AMM pool implementation.
func New(s store.StateStore, ammModule *amm.Module) *Module {
	return &Module{store: s, amm: ammModule}
}

func (m *Module) getKind(pid types.FixedString) (types.PoolKind, error) {
	raw, found, err := m.store.Get(keylet.PoolKind(pid))
	if err != nil {
		return types.PoolKindNone, err
	}
	if !found {
		return types.PoolKindNone, nil
	}
	return types.PoolKind(raw[0]), nil
}

func (m *Module) setKind(pid types.FixedString, kind types.PoolKind) error {
	return m.store.Set(keylet.PoolKind(pid), []byte{byte(kind)})
}

// CreateAmmPool tags pid as an AMM pool and delegates registration to
// the AMM module.
func (m *Module) CreateAmmPool(
	issuer types.Account,
	pid types.FixedString,
	totalFee, exchangeFee uint32,
	symbolData map[types.FixedString]types.Balance,
	description string,
) error {
	kind, err := m.getKind(pid)
	if err != nil {
		return err
	}
	if kind != types.PoolKindNone {
		return ErrPoolAlreadyExists
	}
	if err := m.amm.RegisterPool(issuer, pid, totalFee, exchangeFee, symbolData, description); err != nil {
		return err
	}
	return m.setKind(pid, types.PoolKindAmm)
}

// DestroyPool forwards to the matching pool kind's unregister.
func (m *Module) DestroyPool(issuer types.Account, pid types.FixedString) error {
	kind, err := m.getKind(pid)
	if err != nil {
		return err
	}
	switch kind {
	case types.PoolKindAmm:
		return m.amm.UnregisterPool(issuer, pid)
	default:
		return ErrPoolNotExists
	}
}

// AddLiquidityToPool forwards to the matching pool kind.
func (m *Module) AddLiquidityToPool(issuer types.Account, pid types.FixedString, amounts map[types.FixedString]types.Balance) error {
	kind, err := m.getKind(pid)
	if err != nil {
		return err
	}
	switch kind {
	case types.PoolKindAmm:
		return m.amm.AddLiquidityToPool(issuer, pid, amounts)
	default:
		return ErrPoolNotExists
	}
}

// RemoveLiquidityFromPool forwards to the matching pool kind.
func (m *Module) RemoveLiquidityFromPool(issuer types.Account, pid types.FixedString, shares types.Balance, amounts map[types.FixedString]types.Balance) error {
	kind, err := m.getKind(pid)
	if err != nil {
		return err
	}
	switch kind {
	case types.PoolKindAmm:
		return m.amm.RemoveLiquidityFromPool(issuer, pid, shares, amounts)
	default:
		return ErrPoolNotExists
	}
}

// GetSwapReturnAssetFromPool forwards to the matching pool kind; returns
// zero for an unknown pool rather than erroring, matching the source's
// dispatch-table default.
func (m *Module) GetSwapReturnAssetFromPool(pid types.FixedString, assetIn types.FixedString, amountIn types.Balance, assetOut types.FixedString) (types.Balance, error) {
	kind, err := m.getKind(pid)
	if err != nil {
		return types.ZeroBalance(), err
	}
	if kind != types.PoolKindAmm {
		return types.ZeroBalance(), nil
	}
	return m.amm.GetSwapReturnAsset(pid, assetIn, amountIn, assetOut)
}

// SwapAssetInPool forwards to the matching pool kind.
func (m *Module) SwapAssetInPool(who types.Account, pid types.FixedString, assetIn types.FixedString, amountIn types.Balance, assetOut types.FixedString, minAmountOut types.Balance) error {
	kind, err := m.getKind(pid)
	if err != nil {
		return err
	}
	switch kind {
	case types.PoolKindAmm:
		return m.amm.SwapAsset(who, pid, assetIn, amountIn, assetOut, minAmountOut)
	default:
		return ErrPoolNotExists
	}
}

// ShareBalanceOfPool forwards to the matching pool kind; zero for an
// unknown pool.
func (m *Module) ShareBalanceOfPool(who types.Account, pid types.FixedString) (types.Balance, error) {
	kind, err := m.getKind(pid)
	if err != nil {
		return types.ZeroBalance(), err
	}
	if kind != types.PoolKindAmm {
		return types.ZeroBalance(), nil
	}
	return m.amm.ShareBalanceOf(pid, who)
}

// ShareTotalBalanceFromPool forwards to the matching pool kind; zero
// for an unknown pool.
func (m *Module) ShareTotalBalanceFromPool(pid types.FixedString) (types.Balance, error) {
	kind, err := m.getKind(pid)
	if err != nil {
		return types.ZeroBalance(), err
	}
	if kind != types.PoolKindAmm {
		return types.ZeroBalance(), nil
	}
	return m.amm.ShareTotalBalance(pid)
}

// GetTotalFeeFromPool forwards to the matching pool kind; zero for an
// unknown pool.
func (m *Module) GetTotalFeeFromPool(pid types.FixedString) (uint32, error) {
	kind, err := m.getKind(pid)
	if err != nil {
		return 0, err
	}
	if kind != types.PoolKindAmm {
		return 0, nil
	}
	return m.amm.GetTotalFee(pid)
}

// GetVolumeDataFromPool forwards to the matching pool kind; nil for an
// unknown pool.
func (m *Module) GetVolumeDataFromPool(pid types.FixedString) (map[types.FixedString]amm.VolumeEntry, error) {
	kind, err := m.getKind(pid)
	if err != nil {
		return nil, err
	}
	if kind != types.PoolKindAmm {
		return nil, nil
	}
	return m.amm.GetVolumeData(pid)
}
