package farming

import (
	"github.com/dexcore/ledger/internal/codec"
	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/nft"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Module implements the farming entry points over a StateStore, the
// Fungible Assets module (reward minting, FT stake transfers) and the
// NFT module (NFT stake transfers).
type Module struct {
	store  store.StateStore
	assets *fungible.Module
	nfts   *nft.Module
	events *ledger.Bus
}

// New constructs a Module. events may be nil.
func New(s store.StateStore, assets *fungible.Module, nfts *nft.Module, events *ledger.Bus) *Module {
	return &Module{store: s, assets: assets, nfts: nfts, events: events}
}

func (m *Module) emit(kind string, payload map[string]string) {
	if m.events == nil {
		return
	}
	m.events.Emit(ledger.Event{Module: "farming", Kind: kind, Payload: payload})
}

type farmRecord struct {
	Owner            types.Account
	Stake            StakeTarget
	SharesAsset      types.FixedString
	SharesPerBlock   string
	TotalStakeAmount string
	RewardWeight     uint8
}

type farmerRecord struct {
	FarmerID        types.Account
	StakeAmount     string
	LastRewardBlock uint64
	Rewards         string
}

func toFarmRecord(f Farm) farmRecord {
	return farmRecord{
		Owner:            f.Owner,
		Stake:            f.Stake,
		SharesAsset:      f.SharesAsset,
		SharesPerBlock:   f.SharesPerBlock.String(),
		TotalStakeAmount: f.TotalStakeAmount.String(),
		RewardWeight:     f.RewardWeight,
	}
}

func fromFarmRecord(r farmRecord) (Farm, error) {
	perBlock, err := types.ParseBalance(r.SharesPerBlock)
	if err != nil {
		return Farm{}, err
	}
	total, err := types.ParseBalance(r.TotalStakeAmount)
	if err != nil {
		return Farm{}, err
	}
	return Farm{
		Owner:            r.Owner,
		Stake:            r.Stake,
		SharesAsset:      r.SharesAsset,
		SharesPerBlock:   perBlock,
		TotalStakeAmount: total,
		RewardWeight:     r.RewardWeight,
	}, nil
}

func toFarmerRecord(f Farmer) farmerRecord {
	return farmerRecord{
		FarmerID:        f.FarmerID,
		StakeAmount:     f.StakeAmount.String(),
		LastRewardBlock: uint64(f.LastRewardBlock),
		Rewards:         f.Rewards.String(),
	}
}

func fromFarmerRecord(r farmerRecord) (Farmer, error) {
	stake, err := types.ParseBalance(r.StakeAmount)
	if err != nil {
		return Farmer{}, err
	}
	rewards, err := types.ParseBalance(r.Rewards)
	if err != nil {
		return Farmer{}, err
	}
	return Farmer{
		FarmerID:        r.FarmerID,
		StakeAmount:     stake,
		LastRewardBlock: types.BlockNumber(r.LastRewardBlock),
		Rewards:         rewards,
	}, nil
}

func (m *Module) getFarm(farmID types.FixedString) (Farm, bool, error) {
	raw, found, err := m.store.Get(keylet.Farm(farmID))
	if err != nil || !found {
		return Farm{}, false, err
	}
	var rec farmRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return Farm{}, false, err
	}
	f, err := fromFarmRecord(rec)
	return f, err == nil, err
}

func (m *Module) setFarm(farmID types.FixedString, f Farm) error {
	buf, err := codec.Encode(toFarmRecord(f))
	if err != nil {
		return err
	}
	return m.store.Set(keylet.Farm(farmID), buf)
}

func (m *Module) deleteFarm(farmID types.FixedString) error {
	return m.store.Delete(keylet.Farm(farmID))
}

func (m *Module) getFarmer(farmID types.FixedString, who types.Account) (Farmer, bool, error) {
	raw, found, err := m.store.Get(keylet.Farmer(farmID, who))
	if err != nil || !found {
		return Farmer{}, false, err
	}
	var rec farmerRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return Farmer{}, false, err
	}
	f, err := fromFarmerRecord(rec)
	return f, err == nil, err
}

func (m *Module) setFarmer(farmID types.FixedString, who types.Account, f Farmer) error {
	buf, err := codec.Encode(toFarmerRecord(f))
	if err != nil {
		return err
	}
	return m.store.Set(keylet.Farmer(farmID, who), buf)
}

func (m *Module) deleteFarmer(farmID types.FixedString, who types.Account) error {
	return m.store.Delete(keylet.Farmer(farmID, who))
}

// IsFarmerExisted reports whether who has a farmer record in farmID.
func (m *Module) IsFarmerExisted(farmID types.FixedString, who types.Account) (bool, error) {
	_, found, err := m.getFarmer(farmID, who)
	return found, err
}

// CreateFarm registers a new farm. Exactly one of stakeAsset or
// stakeNFT must be supplied — if stakeAsset is nil, the farm stakes
// the given NFT.
func (m *Module) CreateFarm(
	issuer types.Account,
	farmID types.FixedString,
	sharesAsset types.FixedString,
	stakeAsset *types.FixedString,
	stakeNFTClass, stakeNFTToken *types.FixedString,
	sharesPerBlock types.Balance,
	rewardWeight uint8,
) error {
	if _, found, err := m.getFarm(farmID); err != nil {
		return err
	} else if found {
		return ErrFarmIDAlreadyExisted
	}
	if rewardWeight == 0 {
		return ErrZeroRewardWeight
	}

	if exists, err := m.assets.IsAssetExisted(sharesAsset); err != nil {
		return err
	} else if !exists {
		return ErrAssetNotFound
	}
	info, err := m.assets.GetAssetInfo(sharesAsset)
	if err != nil {
		return err
	}
	if !info.IsMintable {
		return ErrStakeAssetNotMintable
	}
	if isOwner, err := m.assets.IsAssetOwner(sharesAsset, issuer); err != nil {
		return err
	} else if !isOwner {
		return ErrStakeAssetNotOwner
	}

	var stake StakeTarget
	if stakeAsset == nil {
		if stakeNFTClass == nil || stakeNFTToken == nil {
			return ErrNftTokenNotFound
		}
		if existed, err := m.nfts.IsTokenExisted(*stakeNFTClass, *stakeNFTToken); err != nil {
			return err
		} else if !existed {
			return ErrNftTokenNotFound
		}
		stake = StakeTarget{Kind: StakeKindNFT, ClassID: *stakeNFTClass, TokenID: *stakeNFTToken}
	} else {
		if exists, err := m.assets.IsAssetExisted(*stakeAsset); err != nil {
			return err
		} else if !exists {
			return ErrAssetNotFound
		}
		stake = StakeTarget{Kind: StakeKindFT, Asset: *stakeAsset}
	}

	farm := Farm{
		Owner:            issuer,
		Stake:            stake,
		SharesAsset:      sharesAsset,
		SharesPerBlock:   sharesPerBlock,
		TotalStakeAmount: types.ZeroBalance(),
		RewardWeight:     rewardWeight,
	}
	if err := m.setFarm(farmID, farm); err != nil {
		return err
	}
	m.emit("FarmCreated", map[string]string{
		"owner": issuer.String(), "farm_id": farmID.String(), "stake_kind": stake.Kind.String(),
	})
	return nil
}

// DestroyFarm removes an empty farm. Requires caller = owner and
// total_stake_amount == 0.
func (m *Module) DestroyFarm(issuer types.Account, farmID types.FixedString) error {
	farm, found, err := m.getFarm(farmID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFarmIDNotExisted
	}
	if farm.Owner != issuer {
		return ErrNoPermission
	}
	if !farm.TotalStakeAmount.IsZero() {
		return ErrFarmInStaking
	}
	if err := m.deleteFarm(farmID); err != nil {
		return err
	}
	m.emit("FarmDestroyed", map[string]string{"owner": issuer.String(), "farm_id": farmID.String()})
	return nil
}

// StakeAsset stakes into farmID. For an FT farm, amount is required and
// accumulates; for an NFT farm, amount is ignored and a second stake
// while one is already active is rejected.
func (m *Module) StakeAsset(who types.Account, farmID types.FixedString, amount *types.Balance, block types.BlockNumber) error {
	farm, found, err := m.getFarm(farmID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFarmIDNotExisted
	}

	farmer, existed, err := m.getFarmer(farmID, who)
	if err != nil {
		return err
	}
	if !existed {
		farmer = Farmer{FarmerID: who, StakeAmount: types.ZeroBalance(), Rewards: types.ZeroBalance()}
	}
	if existed {
		if _, err := m.UpdateRewards(who, farmID, block); err != nil {
			return err
		}
		farmer, _, err = m.getFarmer(farmID, who)
		if err != nil {
			return err
		}
	}

	switch farm.Stake.Kind {
	case StakeKindNFT:
		if existed || !farm.TotalStakeAmount.IsZero() {
			return ErrNFTFarmerAlreadyInUse
		}
		if err := m.nfts.TransferToken(who, farm.Owner, farm.Stake.ClassID, farm.Stake.TokenID); err != nil {
			return err
		}
		farmer.StakeAmount = types.NewBalance(1)
		farm.TotalStakeAmount = types.NewBalance(1)
	case StakeKindFT:
		if amount == nil {
			return ErrZeroStakeAmount
		}
		if err := m.assets.TransferAsset(who, farm.Stake.Asset, farm.Owner, *amount); err != nil {
			return err
		}
		newStake, err := farmer.StakeAmount.Add(*amount)
		if err != nil {
			return err
		}
		farmer.StakeAmount = newStake
		newTotal, err := farm.TotalStakeAmount.Add(*amount)
		if err != nil {
			return err
		}
		farm.TotalStakeAmount = newTotal
	default:
		return ErrWrongStakeType
	}

	farmer.LastRewardBlock = block
	if err := m.setFarmer(farmID, who, farmer); err != nil {
		return err
	}
	return m.setFarm(farmID, farm)
}

// UnstakeAsset withdraws up to amount (nil means all) from who's
// position in farmID.
func (m *Module) UnstakeAsset(who types.Account, farmID types.FixedString, amount *types.Balance, block types.BlockNumber) error {
	farm, found, err := m.getFarm(farmID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFarmIDNotExisted
	}
	if existed, err := m.IsFarmerExisted(farmID, who); err != nil {
		return err
	} else if !existed {
		return ErrFarmerNotExisted
	}

	if _, err := m.UpdateRewards(who, farmID, block); err != nil {
		return err
	}
	farmer, _, err := m.getFarmer(farmID, who)
	if err != nil {
		return err
	}

	target := farmer.StakeAmount
	if amount != nil {
		target = *amount
	}
	if target.Cmp(farmer.StakeAmount) > 0 || target.Cmp(farm.TotalStakeAmount) > 0 {
		return ErrTooLargeStakeAmount
	}

	if !target.IsZero() {
		switch farm.Stake.Kind {
		case StakeKindNFT:
			if err := m.nfts.TransferToken(farm.Owner, who, farm.Stake.ClassID, farm.Stake.TokenID); err != nil {
				return err
			}
		case StakeKindFT:
			if err := m.assets.TransferAsset(farm.Owner, farm.Stake.Asset, who, target); err != nil {
				return err
			}
		default:
			return ErrWrongStakeType
		}

		newStake, err := farmer.StakeAmount.Sub(target)
		if err != nil {
			return err
		}
		farmer.StakeAmount = newStake
		newTotal, err := farm.TotalStakeAmount.Sub(target)
		if err != nil {
			return err
		}
		farm.TotalStakeAmount = newTotal

		if err := m.setFarmer(farmID, who, farmer); err != nil {
			return err
		}
		if err := m.setFarm(farmID, farm); err != nil {
			return err
		}
		if _, err := m.RemoveFarmer(who, farmID); err != nil {
			return err
		}
	}
	return nil
}

// CalculateReward computes who's currently accrued-but-unrecorded
// reward in farmID as of block, without mutating any state. Returns
// zero if the farm or farmer is absent, block precedes the farmer's
// last reward block, or the farm has no stake.
//
// Primary formula: shares_per_block * n_blocks * stake_amount /
// total_stake_amount, then scaled by reward_weight. If that primary
// division floors to zero, the reward_weight multiply is done before
// the division instead — an asymmetric rescue that preserves
// precision for small stakes rather than always losing it to integer
// division.
func (m *Module) CalculateReward(who types.Account, farmID types.FixedString, block types.BlockNumber) (types.Balance, error) {
	farm, found, err := m.getFarm(farmID)
	if err != nil || !found {
		return types.ZeroBalance(), err
	}
	farmer, found, err := m.getFarmer(farmID, who)
	if err != nil || !found {
		return types.ZeroBalance(), err
	}
	if block < farmer.LastRewardBlock {
		return types.ZeroBalance(), nil
	}
	if farm.TotalStakeAmount.IsZero() {
		return types.ZeroBalance(), nil
	}

	n := types.NewBalance(uint64(block - farmer.LastRewardBlock))
	base, err := farm.SharesPerBlock.Mul(n)
	if err != nil {
		return types.ZeroBalance(), nil
	}
	base, err = base.Mul(farmer.StakeAmount)
	if err != nil {
		return types.ZeroBalance(), nil
	}

	reward := base.Div(farm.TotalStakeAmount)
	weight := types.NewBalance(uint64(farm.RewardWeight))
	if reward.IsZero() {
		rescued, err := base.Mul(weight)
		if err != nil {
			return types.ZeroBalance(), nil
		}
		return rescued.Div(farm.TotalStakeAmount), nil
	}
	weighted, err := reward.Mul(weight)
	if err != nil {
		return types.ZeroBalance(), nil
	}
	return weighted, nil
}

// UpdateRewards mints who's newly accrued reward in farmID to the farm
// owner, credits it to the farmer's rewards balance, and advances
// last_reward_block to block. Returns the farmer's new total rewards.
func (m *Module) UpdateRewards(who types.Account, farmID types.FixedString, block types.BlockNumber) (types.Balance, error) {
	farmer, found, err := m.getFarmer(farmID, who)
	if err != nil {
		return types.Balance{}, err
	}
	if !found {
		return types.Balance{}, ErrFarmerNotExisted
	}
	if _, found, err := m.getFarm(farmID); err != nil {
		return types.Balance{}, err
	} else if !found {
		return types.Balance{}, ErrFarmIDNotExisted
	}
	if block < farmer.LastRewardBlock {
		return types.Balance{}, ErrInvalidLastRewardBlock
	}

	reward, err := m.CalculateReward(who, farmID, block)
	if err != nil {
		return types.Balance{}, err
	}
	if !reward.IsZero() {
		newRewards, err := farmer.Rewards.Add(reward)
		if err != nil {
			return types.Balance{}, err
		}

		farm, _, err := m.getFarm(farmID)
		if err != nil {
			return types.Balance{}, err
		}
		if err := m.assets.MintAsset(farm.Owner, farm.SharesAsset, reward); err != nil {
			return types.Balance{}, err
		}
		farmer.Rewards = newRewards
	}
	farmer.LastRewardBlock = block

	if err := m.setFarmer(farmID, who, farmer); err != nil {
		return types.Balance{}, err
	}
	return farmer.Rewards, nil
}

// Claim pays out up to rewardToClaim (zero means all accrued) of
// farmID's rewards to who, out of the farm owner's wallet.
func (m *Module) Claim(who types.Account, farmID types.FixedString, rewardToClaim types.Balance, block types.BlockNumber) error {
	if _, err := m.UpdateRewards(who, farmID, block); err != nil {
		return err
	}

	farm, found, err := m.getFarm(farmID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFarmIDNotExisted
	}
	farmer, _, err := m.getFarmer(farmID, who)
	if err != nil {
		return err
	}
	if rewardToClaim.Cmp(farmer.Rewards) > 0 {
		return ErrNoEnoughRewards
	}

	toClaim := rewardToClaim
	if toClaim.IsZero() {
		toClaim = farmer.Rewards
	}

	if err := m.assets.TransferAsset(farm.Owner, farm.SharesAsset, who, toClaim); err != nil {
		return err
	}
	newRewards, err := farmer.Rewards.Sub(toClaim)
	if err != nil {
		return err
	}
	farmer.Rewards = newRewards
	if err := m.setFarmer(farmID, who, farmer); err != nil {
		return err
	}

	m.emit("RewardsClaimed", map[string]string{
		"who": who.String(), "farm_id": farmID.String(), "amount": toClaim.String(),
	})
	return m.removeFarmerIfEligible(who, farmID, farm, farmer)
}

// RemoveFarmer deletes who's farmer record in farmID if both stake and
// rewards are zero. Only NFT farms are pruned this way — FT farms keep
// the record for historical accrual even once empty.
func (m *Module) RemoveFarmer(who types.Account, farmID types.FixedString) (bool, error) {
	farm, found, err := m.getFarm(farmID)
	if err != nil || !found {
		return false, err
	}
	farmer, found, err := m.getFarmer(farmID, who)
	if err != nil || !found {
		return false, err
	}
	return m.removeFarmerIfEligible(who, farmID, farm, farmer)
}

func (m *Module) removeFarmerIfEligible(who types.Account, farmID types.FixedString, farm Farm, farmer Farmer) (bool, error) {
	if !farmer.StakeAmount.IsZero() || !farmer.Rewards.IsZero() {
		return false, nil
	}
	if farm.Stake.Kind != StakeKindNFT {
		return false, nil
	}
	if existed, err := m.IsFarmerExisted(farmID, who); err != nil || !existed {
		return false, err
	}
	if err := m.deleteFarmer(farmID, who); err != nil {
		return false, err
	}
	return true, nil
}
