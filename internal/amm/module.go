package amm

import (
	"strings"

	"github.com/dexcore/ledger/internal/codec"
	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Module implements the AMM pool entry points over a StateStore, a
// Ledger collaborator for reserve settlement, and the Fungible Assets
// module for symbol existence checks.
type Module struct {
	store  store.StateStore
	ledger ledger.Ledger
	assets *fungible.Module
	events *ledger.Bus
}

// New constructs a Module. events may be nil.
func New(s store.StateStore, l ledger.Ledger, assets *fungible.Module, events *ledger.Bus) *Module {
	return &Module{store: s, ledger: l, assets: assets, events: events}
}

func (m *Module) emit(kind string, payload map[string]string) {
	if m.events == nil {
		return
	}
	m.events.Emit(ledger.Event{Module: "amm", Kind: kind, Payload: payload})
}

func (m *Module) getOwner(pid types.FixedString) (types.Account, bool, error) {
	raw, found, err := m.store.Get(keylet.PoolOwner(pid))
	if err != nil || !found {
		return types.Account{}, false, err
	}
	return types.NewAccount(raw), true, nil
}

func (m *Module) setOwner(pid types.FixedString, owner types.Account) error {
	return m.store.Set(keylet.PoolOwner(pid), owner[:])
}

func (m *Module) deleteOwner(pid types.FixedString) error {
	return m.store.Delete(keylet.PoolOwner(pid))
}

func (m *Module) getPool(pid types.FixedString) (PoolInfo, bool, error) {
	raw, found, err := m.store.Get(keylet.Pool(pid))
	if err != nil || !found {
		return PoolInfo{}, false, err
	}
	var rec poolInfoRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return PoolInfo{}, false, err
	}
	info, err := fromRecord(rec)
	return info, err == nil, err
}

func (m *Module) setPool(info PoolInfo) error {
	buf, err := codec.Encode(toRecord(info))
	if err != nil {
		return err
	}
	return m.store.Set(keylet.Pool(info.Pid), buf)
}

func (m *Module) deletePool(pid types.FixedString) error {
	return m.store.Delete(keylet.Pool(pid))
}

// poolExists reports whether pid has a registered owner.
func (m *Module) poolExists(pid types.FixedString) (bool, error) {
	_, found, err := m.getOwner(pid)
	return found, err
}

func (m *Module) ensurePoolExists(pid types.FixedString) error {
	exists, err := m.poolExists(pid)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPoolNotExists
	}
	return nil
}

func symbolList(amounts map[types.FixedString]types.Balance) []string {
	out := make([]string, 0, len(amounts))
	for s := range amounts {
		out = append(out, s.String())
	}
	return out
}

// RegisterPool creates a new pool owned by issuer over the given symbol
// set, seeded with empty reserves. Any symbol whose initial amount is
// positive is deposited immediately via AddLiquidityToPool.
func (m *Module) RegisterPool(
	issuer types.Account,
	pid types.FixedString,
	totalFee, exchangeFee uint32,
	symbolData map[types.FixedString]types.Balance,
	description string,
) error {
	if !types.IsValidID(pid) {
		return ErrInvalidPoolID
	}
	if exists, err := m.poolExists(pid); err != nil {
		return err
	} else if exists {
		return ErrPoolAlreadyExists
	}
	if !(totalFee < FeeDivisor && exchangeFee <= totalFee) {
		return ErrTooLargeFee
	}
	if len(symbolData) == 0 {
		return ErrEmptySymbols
	}
	if len(symbolData) > MaxNumSymbols {
		return ErrTooManySymbols
	}

	symbols := make([]types.FixedString, 0, len(symbolData))
	for symbol := range symbolData {
		exists, err := m.assets.IsAssetExisted(symbol)
		if err != nil {
			return err
		}
		if !exists {
			return ErrSymbolNotExistsInAsset
		}
		symbols = append(symbols, symbol)
	}

	if err := m.setOwner(pid, issuer); err != nil {
		return err
	}
	if err := m.setPool(newPoolInfo(pid, totalFee, exchangeFee, symbols, description)); err != nil {
		return err
	}
	m.emit("PoolRegistered", map[string]string{"pid": pid.String(), "issuer": issuer.String()})

	initial := make(map[types.FixedString]types.Balance)
	for symbol, amount := range symbolData {
		if !amount.IsZero() {
			initial[symbol] = amount
		}
	}
	if len(initial) > 0 {
		if err := m.AddLiquidityToPool(issuer, pid, initial); err != nil {
			return err
		}
	}
	return nil
}

// UnregisterPool removes an empty pool. Requires caller to be the owner
// and shares_total_supply == 0.
func (m *Module) UnregisterPool(issuer types.Account, pid types.FixedString) error {
	if err := m.ensurePoolExists(pid); err != nil {
		return err
	}
	owner, _, err := m.getOwner(pid)
	if err != nil {
		return err
	}
	if owner != issuer {
		return ErrInvalidOwner
	}

	pool, _, err := m.getPool(pid)
	if err != nil {
		return err
	}
	if !pool.SharesTotalSupply.IsZero() {
		return ErrHasRemainingShares
	}

	if err := m.deletePool(pid); err != nil {
		return err
	}
	if err := m.deleteOwner(pid); err != nil {
		return err
	}
	m.emit("PoolUnregistered", map[string]string{"pid": pid.String(), "issuer": issuer.String()})
	return nil
}

// AddLiquidityToPool deposits amounts into pid's reserves and mints LP
// shares to issuer. On a non-empty pool, amounts is rewritten in place
// to the actual taken deposit per symbol (the fair-share computation
// rounds down and may take less than requested).
func (m *Module) AddLiquidityToPool(issuer types.Account, pid types.FixedString, amounts map[types.FixedString]types.Balance) error {
	if len(amounts) == 0 {
		return ErrEmptySymbols
	}
	if err := m.ensurePoolExists(pid); err != nil {
		return err
	}
	pool, _, err := m.getPool(pid)
	if err != nil {
		return err
	}

	for symbol, amount := range amounts {
		exists, err := m.assets.IsAssetExisted(symbol)
		if err != nil {
			return err
		}
		if !exists {
			return ErrSymbolNotExistsInAsset
		}
		if amount.IsZero() {
			return ErrInvalidBalance
		}
		if _, ok := pool.SymbolData[symbol]; !ok {
			return ErrSymbolNotExistsInPool
		}
	}

	var shares types.Balance
	if !pool.SharesTotalSupply.IsZero() {
		fairSupply := types.MaxBalance()
		for symbol, amount := range amounts {
			selfBalance := pool.SymbolData[symbol]
			candidate := amount.MulDiv(pool.SharesTotalSupply, selfBalance)
			fairSupply = types.Min(fairSupply, candidate)
		}
		for symbol := range amounts {
			selfBalance := pool.SymbolData[symbol]
			taken := selfBalance.MulDiv(fairSupply, pool.SharesTotalSupply)
			if taken.IsZero() {
				return ErrZeroAmount
			}
			newBalance, err := selfBalance.Add(taken)
			if err != nil {
				return err
			}
			pool.SymbolData[symbol] = newBalance
			amounts[symbol] = taken
		}
		shares = fairSupply
	} else {
		for symbol, amount := range amounts {
			newBalance, err := pool.SymbolData[symbol].Add(amount)
			if err != nil {
				return err
			}
			pool.SymbolData[symbol] = newBalance
		}
		shares = InitSharesSupply
	}

	if shares.IsZero() {
		return ErrZeroShares
	}
	newTotal, err := pool.SharesTotalSupply.Add(shares)
	if err != nil {
		return err
	}
	pool.SharesTotalSupply = newTotal

	// shares_data[issuer] += minted — additive per the documented
	// crediting rule, unlike the overwrite preserved in SwapAsset.
	prevShares := pool.SharesData[issuer]
	newShares, err := prevShares.Add(shares)
	if err != nil {
		return err
	}
	pool.SharesData[issuer] = newShares

	if err := m.setPool(pool); err != nil {
		return err
	}

	for symbol, amount := range amounts {
		neg, err := types.AmountFromBalance(amount)
		if err != nil {
			return err
		}
		neg, err = neg.Neg()
		if err != nil {
			return err
		}
		if err := m.ledger.UpdateBalance(symbol, issuer, neg); err != nil {
			return err
		}
	}

	m.emit("AddLiquidity", map[string]string{
		"pid": pid.String(), "issuer": issuer.String(), "shares": shares.String(),
		"symbols": strings.Join(symbolList(amounts), ","),
	})
	return nil
}

// RemoveLiquidityFromPool burns shares and withdraws the corresponding
// reserve amounts. Matches the source's behavior of NOT crediting the
// issuer's ledger with the removed tokens — the pool decrements its own
// reserves but update_balance is never called on the way out.
func (m *Module) RemoveLiquidityFromPool(issuer types.Account, pid types.FixedString, shares types.Balance, amounts map[types.FixedString]types.Balance) error {
	if err := m.ensurePoolExists(pid); err != nil {
		return err
	}
	pool, _, err := m.getPool(pid)
	if err != nil {
		return err
	}

	prevShares, ok := pool.SharesData[issuer]
	if !ok {
		prevShares = types.ZeroBalance()
		pool.SharesData[issuer] = prevShares
	}

	if shares.IsZero() || prevShares.Cmp(shares) < 0 || pool.SharesTotalSupply.Cmp(shares) < 0 {
		return ErrNoEnoughShares
	}

	for symbol, minAmount := range amounts {
		selfBalance, ok := pool.SymbolData[symbol]
		if !ok {
			return ErrSymbolNotExistsInPool
		}
		computed := selfBalance.MulDiv(shares, pool.SharesTotalSupply)
		if computed.Cmp(minAmount) < 0 {
			return ErrTooLessSharesAmount
		}
		newBalance, err := selfBalance.Sub(computed)
		if err != nil {
			return err
		}
		pool.SymbolData[symbol] = newBalance
	}

	if prevShares.Cmp(shares) == 0 {
		delete(pool.SharesData, issuer)
	} else {
		remaining, err := prevShares.Sub(shares)
		if err != nil {
			return err
		}
		pool.SharesData[issuer] = remaining
	}
	newTotal, err := pool.SharesTotalSupply.Sub(shares)
	if err != nil {
		return err
	}
	pool.SharesTotalSupply = newTotal

	if err := m.setPool(pool); err != nil {
		return err
	}

	m.emit("RemoveLiquidity", map[string]string{
		"pid": pid.String(), "issuer": issuer.String(), "shares": shares.String(),
	})
	return nil
}

// GetSwapReturnAsset computes the constant-product swap output for a
// hypothetical trade without mutating any state.
func (m *Module) GetSwapReturnAsset(pid types.FixedString, assetIn types.FixedString, amountIn types.Balance, assetOut types.FixedString) (types.Balance, error) {
	pool, found, err := m.getPool(pid)
	if err != nil {
		return types.Balance{}, err
	}
	if !found {
		return types.Balance{}, ErrPoolNotExists
	}
	return computeSwapReturn(pool, assetIn, amountIn, assetOut)
}

func computeSwapReturn(pool PoolInfo, assetIn types.FixedString, amountIn types.Balance, assetOut types.FixedString) (types.Balance, error) {
	inBalance, ok := pool.SymbolData[assetIn]
	if !ok {
		return types.Balance{}, ErrSymbolNotExistsInPool
	}
	outBalance, ok := pool.SymbolData[assetOut]
	if !ok {
		return types.Balance{}, ErrSymbolNotExistsInPool
	}
	if inBalance.IsZero() || outBalance.IsZero() || assetIn == assetOut || amountIn.IsZero() {
		return types.Balance{}, ErrInvalidBalance
	}

	feeFactor := types.NewBalance(uint64(FeeDivisor - pool.TotalFee))
	amountWithFee, err := amountIn.Mul(feeFactor)
	if err != nil {
		return types.Balance{}, err
	}
	scaledIn, err := types.NewBalance(uint64(FeeDivisor)).Mul(inBalance)
	if err != nil {
		return types.Balance{}, err
	}
	denominator, err := scaledIn.Add(amountWithFee)
	if err != nil {
		return types.Balance{}, err
	}
	return amountWithFee.MulDiv(outBalance, denominator), nil
}

// SwapAsset trades amountIn of assetIn for assetOut, requiring at least
// minAmountOut out.
//
// Preserves two source behaviors verbatim rather than correcting them:
// reserve_out is incremented (not decremented) below, and the protocol
// fee-skim share mint overwrites shares_data[who] instead of
// accumulating into it. See the package doc comment.
func (m *Module) SwapAsset(who types.Account, pid types.FixedString, assetIn types.FixedString, amountIn types.Balance, assetOut types.FixedString, minAmountOut types.Balance) error {
	pool, found, err := m.getPool(pid)
	if err != nil {
		return err
	}
	if !found {
		return ErrPoolNotExists
	}

	amountOut, err := computeSwapReturn(pool, assetIn, amountIn, assetOut)
	if err != nil {
		return err
	}
	if amountOut.Cmp(minAmountOut) < 0 {
		return ErrNoEnoughSwapAmount
	}

	if err := m.ledger.EnsureCanWithdraw(assetIn, who, amountIn); err != nil {
		return err
	}

	inBalance := pool.SymbolData[assetIn]
	outBalance := pool.SymbolData[assetOut]
	prevInvariant, err := types.IntegerSqrt(inBalance).Mul(types.IntegerSqrt(outBalance))
	if err != nil {
		return err
	}

	newIn, err := inBalance.Add(amountIn)
	if err != nil {
		return err
	}
	// BUG (preserved): reserve_out is incremented, not decremented, on
	// the output side of a swap.
	newOut, err := outBalance.Add(amountOut)
	if err != nil {
		return err
	}
	pool.SymbolData[assetIn] = newIn
	pool.SymbolData[assetOut] = newOut

	newInvariant, err := types.IntegerSqrt(newIn).Mul(types.IntegerSqrt(newOut))
	if err != nil {
		return err
	}
	if newInvariant.Cmp(prevInvariant) < 0 {
		return ErrWrongInvariant
	}

	if pool.ExchangeFee > 0 {
		delta, err := newInvariant.Sub(prevInvariant)
		if err == nil && !delta.IsZero() {
			numerator, err := delta.Mul(pool.SharesTotalSupply)
			if err != nil {
				return err
			}
			denominator := newInvariant.MulDiv(types.NewBalance(uint64(pool.TotalFee)), types.NewBalance(uint64(pool.ExchangeFee)))
			if !denominator.IsZero() {
				protocolShares := numerator.Div(denominator)
				if !protocolShares.IsZero() {
					newTotal, err := pool.SharesTotalSupply.Add(protocolShares)
					if err != nil {
						return err
					}
					pool.SharesTotalSupply = newTotal
					// BUG (preserved): overwrites who's share balance
					// instead of accumulating into it.
					pool.SharesData[who] = protocolShares
				}
			}
		}
	}

	if err := m.setPool(pool); err != nil {
		return err
	}

	negIn, err := types.AmountFromBalance(amountIn)
	if err != nil {
		return err
	}
	negIn, err = negIn.Neg()
	if err != nil {
		return err
	}
	if err := m.ledger.UpdateBalance(assetIn, who, negIn); err != nil {
		return err
	}
	posOut, err := types.AmountFromBalance(amountOut)
	if err != nil {
		return err
	}
	if err := m.ledger.UpdateBalance(assetOut, who, posOut); err != nil {
		return err
	}

	volIn := pool.VolumeData[assetIn]
	newInput, err := volIn.Input.Add(amountIn)
	if err != nil {
		return err
	}
	volIn.Input = newInput
	pool.VolumeData[assetIn] = volIn

	volOut := pool.VolumeData[assetOut]
	newOutput, err := volOut.Output.Add(amountOut)
	if err != nil {
		return err
	}
	volOut.Output = newOutput
	pool.VolumeData[assetOut] = volOut

	if err := m.setPool(pool); err != nil {
		return err
	}

	m.emit("SwapAsset", map[string]string{
		"pid": pid.String(), "who": who.String(),
		"asset_in": assetIn.String(), "amount_in": amountIn.String(),
		"asset_out": assetOut.String(), "amount_out": amountOut.String(),
	})
	return nil
}

// ShareBalanceOf returns who's LP share balance in pid, or zero if the
// pool or the entry doesn't exist.
func (m *Module) ShareBalanceOf(pid types.FixedString, who types.Account) (types.Balance, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return types.ZeroBalance(), err
	}
	return pool.SharesData[who], nil
}

// ShareTotalBalance returns pid's total outstanding LP shares.
func (m *Module) ShareTotalBalance(pid types.FixedString) (types.Balance, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return types.ZeroBalance(), err
	}
	return pool.SharesTotalSupply, nil
}

// GetSymbolData returns pid's reserve map.
func (m *Module) GetSymbolData(pid types.FixedString) (map[types.FixedString]types.Balance, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return nil, err
	}
	return pool.SymbolData, nil
}

// GetAllSymbols returns the list of symbols pid holds reserves of.
func (m *Module) GetAllSymbols(pid types.FixedString) ([]types.FixedString, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return nil, err
	}
	out := make([]types.FixedString, 0, len(pool.SymbolData))
	for s := range pool.SymbolData {
		out = append(out, s)
	}
	return out, nil
}

// GetTotalFee returns pid's total fee, or zero if the pool doesn't exist.
func (m *Module) GetTotalFee(pid types.FixedString) (uint32, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return 0, err
	}
	return pool.TotalFee, nil
}

// GetVolumeData returns pid's cumulative swap volume per symbol.
func (m *Module) GetVolumeData(pid types.FixedString) (map[types.FixedString]VolumeEntry, error) {
	pool, found, err := m.getPool(pid)
	if err != nil || !found {
		return nil, err
	}
	return pool.VolumeData, nil
}
