// Package genesis loads the flat JSON seed document that bootstraps a
// fresh store: endowed assets, NFTs, pools and farms, applied in that
// fixed order so later records can reference earlier ones. Grounded on
// the #[pallet::genesis_config]/GenesisBuild blocks across
// original_source/pallets/*/src/lib.rs, one endowed_* list per module.
package genesis

import (
	"encoding/json"
	"os"

	"github.com/dexcore/ledger/internal/types"
)

// AssetSeed mirrors fungible-asset's endowed_asset tuple.
type AssetSeed struct {
	Issuer        string `json:"issuer"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Precision     uint8  `json:"precision"`
	IsMintable    bool   `json:"is_mintable"`
	IsBurnable    bool   `json:"is_burnable"`
	Description   string `json:"description"`
	InitialSupply string `json:"initial_supply"`
}

// PoolSeed mirrors pool-amm's endowed_pool tuple.
type PoolSeed struct {
	Issuer      string            `json:"issuer"`
	PoolID      string            `json:"pool_id"`
	TotalFee    uint32            `json:"total_fee"`
	ExchangeFee uint32            `json:"exchange_fee"`
	SymbolData  map[string]string `json:"symbol_data"`
	Description string            `json:"description"`
}

// NftSeed mirrors the nft pallet's endowed class+token pair: a class
// with owner and data, plus the tokens to mint into it.
type NftSeed struct {
	Owner     string      `json:"owner"`
	ClassID   string      `json:"class_id"`
	ClassData string      `json:"class_data"`
	Tokens    []TokenSeed `json:"tokens"`
}

// TokenSeed is one token to mint within an NftSeed's class.
type TokenSeed struct {
	TokenID  string `json:"token_id"`
	Metadata string `json:"metadata"`
	Data     string `json:"data"`
}

// FarmSeed mirrors farming's endowed_farm tuple. Exactly one of
// StakeAsset or (StakeNftClass, StakeNftToken) must be set.
type FarmSeed struct {
	Owner          string `json:"owner"`
	FarmID         string `json:"farm_id"`
	SharesAsset    string `json:"shares_asset"`
	StakeAsset     string `json:"stake_asset,omitempty"`
	StakeNftClass  string `json:"stake_nft_class,omitempty"`
	StakeNftToken  string `json:"stake_nft_token,omitempty"`
	SharesPerBlock string `json:"shares_per_block"`
	RewardWeight   uint8  `json:"reward_weight"`
}

// Genesis is the parsed seed document.
type Genesis struct {
	EndowedAssets []AssetSeed `json:"endowed_assets"`
	EndowedPools  []PoolSeed  `json:"endowed_pools"`
	EndowedNfts   []NftSeed   `json:"endowed_nfts"`
	EndowedFarms  []FarmSeed  `json:"endowed_farms"`
}

// Load reads and parses a genesis document from path.
func Load(path string) (*Genesis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Genesis
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func account(s string) types.Account {
	return types.NewAccount([]byte(s))
}

func fixed(s string) types.FixedString {
	return types.NewFixedString(s)
}
