package farming

import "github.com/dexcore/ledger/internal/types"

// StakeKind distinguishes what a farm accepts as stake.
type StakeKind uint8

const (
	StakeKindNone StakeKind = iota
	StakeKindFT
	StakeKindNFT
)

func (k StakeKind) String() string {
	switch k {
	case StakeKindFT:
		return "FT"
	case StakeKindNFT:
		return "NFT"
	default:
		return "None"
	}
}

// StakeTarget is what a farm accepts as stake: either a fungible asset
// or one specific NFT (class_id, token_id) pair.
type StakeTarget struct {
	Kind    StakeKind
	Asset   types.FixedString
	ClassID types.FixedString
	TokenID types.FixedString
}

// Farm is a farm's static configuration plus its running total stake.
type Farm struct {
	Owner            types.Account
	Stake            StakeTarget
	SharesAsset      types.FixedString
	SharesPerBlock   types.Balance
	TotalStakeAmount types.Balance
	RewardWeight     uint8
}

// Farmer is one account's position within a farm.
type Farmer struct {
	FarmerID        types.Account
	StakeAmount     types.Balance
	LastRewardBlock types.BlockNumber
	Rewards         types.Balance
}
