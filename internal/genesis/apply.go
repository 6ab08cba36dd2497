package genesis

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dexcore/ledger/internal/farming"
	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/nft"
	"github.com/dexcore/ledger/internal/poolmanager"
	"github.com/dexcore/ledger/internal/types"
)

// Stores bundles the module handles Apply writes into. All must share
// the same underlying Sandbox so a failed genesis rolls back cleanly.
type Stores struct {
	Assets *fungible.Module
	Nfts   *nft.Module
	Pools  *poolmanager.Module
	Farms  *farming.Module
}

// Apply validates every record concurrently (pure, order-independent
// checks over static fields only) and then applies them sequentially
// in a fixed order — assets, then NFTs, then pools, then farms — so
// that later records can depend on earlier ones within the same load.
func (g *Genesis) Apply(s Stores) error {
	if err := g.validate(); err != nil {
		return err
	}

	for _, a := range g.EndowedAssets {
		supply, err := types.ParseBalance(orZero(a.InitialSupply))
		if err != nil {
			return fmt.Errorf("genesis: asset %s: %w", a.Symbol, err)
		}
		if err := s.Assets.RegisterAsset(
			account(a.Issuer), fixed(a.Symbol), fixed(a.Name),
			a.Precision, a.IsMintable, a.IsBurnable, a.Description, supply,
		); err != nil {
			return fmt.Errorf("genesis: asset %s: %w", a.Symbol, err)
		}
	}

	for _, n := range g.EndowedNfts {
		owner := account(n.Owner)
		classID := fixed(n.ClassID)
		if err := s.Nfts.CreateNftClass(owner, classID, n.ClassData); err != nil {
			return fmt.Errorf("genesis: nft class %s: %w", n.ClassID, err)
		}
		for _, tok := range n.Tokens {
			if err := s.Nfts.MintToken(owner, classID, fixed(tok.TokenID), tok.Metadata, tok.Data); err != nil {
				return fmt.Errorf("genesis: nft token %s/%s: %w", n.ClassID, tok.TokenID, err)
			}
		}
	}

	for _, p := range g.EndowedPools {
		symbolData := make(map[types.FixedString]types.Balance, len(p.SymbolData))
		for symbol, amountStr := range p.SymbolData {
			if symbol == "" {
				continue
			}
			amount, err := types.ParseBalance(amountStr)
			if err != nil {
				return fmt.Errorf("genesis: pool %s: %w", p.PoolID, err)
			}
			symbolData[fixed(symbol)] = amount
		}
		if len(symbolData) == 0 {
			continue
		}
		if err := s.Pools.CreateAmmPool(
			account(p.Issuer), fixed(p.PoolID), p.TotalFee, p.ExchangeFee, symbolData, p.Description,
		); err != nil {
			return fmt.Errorf("genesis: pool %s: %w", p.PoolID, err)
		}
	}

	for _, f := range g.EndowedFarms {
		sharesPerBlock, err := types.ParseBalance(f.SharesPerBlock)
		if err != nil {
			return fmt.Errorf("genesis: farm %s: %w", f.FarmID, err)
		}
		var stakeAsset *types.FixedString
		var stakeClass, stakeToken *types.FixedString
		if f.StakeAsset != "" {
			asset := fixed(f.StakeAsset)
			stakeAsset = &asset
		} else {
			c := fixed(f.StakeNftClass)
			t := fixed(f.StakeNftToken)
			stakeClass, stakeToken = &c, &t
		}
		if err := s.Farms.CreateFarm(
			account(f.Owner), fixed(f.FarmID), fixed(f.SharesAsset),
			stakeAsset, stakeClass, stakeToken, sharesPerBlock, f.RewardWeight,
		); err != nil {
			return fmt.Errorf("genesis: farm %s: %w", f.FarmID, err)
		}
	}

	return nil
}

// validate runs every record's static-field checks concurrently: these
// checks never touch the shared store, so running them in parallel
// ahead of the sequential apply pass below doesn't risk determinism.
func (g *Genesis) validate() error {
	var eg errgroup.Group

	for _, a := range g.EndowedAssets {
		a := a
		eg.Go(func() error { return validateAsset(a) })
	}
	for _, p := range g.EndowedPools {
		p := p
		eg.Go(func() error { return validatePool(p) })
	}
	for _, n := range g.EndowedNfts {
		n := n
		eg.Go(func() error { return validateNft(n) })
	}
	for _, f := range g.EndowedFarms {
		f := f
		eg.Go(func() error { return validateFarm(f) })
	}

	return eg.Wait()
}

func validateAsset(a AssetSeed) error {
	if !types.IsValidSymbol(fixed(a.Symbol)) {
		return fmt.Errorf("genesis: invalid asset symbol %q", a.Symbol)
	}
	if !types.IsValidName(fixed(a.Name)) {
		return fmt.Errorf("genesis: invalid asset name %q", a.Name)
	}
	if a.Precision > fungible.MaxPrecision {
		return fmt.Errorf("genesis: asset %s: precision %d exceeds maximum", a.Symbol, a.Precision)
	}
	if _, err := types.ParseBalance(orZero(a.InitialSupply)); err != nil {
		return fmt.Errorf("genesis: asset %s: %w", a.Symbol, err)
	}
	return nil
}

func validatePool(p PoolSeed) error {
	if !types.IsValidID(fixed(p.PoolID)) {
		return fmt.Errorf("genesis: invalid pool id %q", p.PoolID)
	}
	if !(p.TotalFee < 10_000 && p.ExchangeFee <= p.TotalFee) {
		return fmt.Errorf("genesis: pool %s: fee out of bounds", p.PoolID)
	}
	for symbol, amountStr := range p.SymbolData {
		if symbol == "" {
			continue
		}
		if _, err := types.ParseBalance(amountStr); err != nil {
			return fmt.Errorf("genesis: pool %s: symbol %s: %w", p.PoolID, symbol, err)
		}
	}
	return nil
}

func validateNft(n NftSeed) error {
	if !types.IsValidID(fixed(n.ClassID)) {
		return fmt.Errorf("genesis: invalid nft class id %q", n.ClassID)
	}
	for _, tok := range n.Tokens {
		if !types.IsValidID(fixed(tok.TokenID)) {
			return fmt.Errorf("genesis: invalid nft token id %q", tok.TokenID)
		}
	}
	return nil
}

func validateFarm(f FarmSeed) error {
	if !types.IsValidID(fixed(f.FarmID)) {
		return fmt.Errorf("genesis: invalid farm id %q", f.FarmID)
	}
	if f.RewardWeight == 0 {
		return fmt.Errorf("genesis: farm %s: reward weight must be positive", f.FarmID)
	}
	hasAsset := f.StakeAsset != ""
	hasNft := f.StakeNftClass != "" && f.StakeNftToken != ""
	if hasAsset == hasNft {
		return fmt.Errorf("genesis: farm %s: exactly one of stake_asset or stake_nft must be set", f.FarmID)
	}
	if _, err := types.ParseBalance(f.SharesPerBlock); err != nil {
		return fmt.Errorf("genesis: farm %s: %w", f.FarmID, err)
	}
	return nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
