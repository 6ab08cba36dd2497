package farming

import "errors"

var (
	ErrNftTokenNotFound       = errors.New("farming: staked nft token not found")
	ErrAssetNotFound          = errors.New("farming: asset does not exist")
	ErrStakeAssetNotMintable  = errors.New("farming: shares asset is not mintable")
	ErrStakeAssetNotOwner     = errors.New("farming: issuer does not own the shares asset")
	ErrFarmIDAlreadyExisted   = errors.New("farming: farm id already exists")
	ErrFarmIDNotExisted       = errors.New("farming: farm does not exist")
	ErrZeroRewardWeight       = errors.New("farming: reward weight must be positive")
	ErrNoPermission           = errors.New("farming: caller is not the farm owner")
	ErrFarmInStaking          = errors.New("farming: farm still has stake")
	ErrFarmerNotExisted       = errors.New("farming: farmer record does not exist")
	ErrNFTFarmerAlreadyInUse  = errors.New("farming: nft farm already has an active staker")
	ErrWrongStakeType         = errors.New("farming: stake target has no type set")
	ErrInvalidLastRewardBlock = errors.New("farming: current block precedes last reward block")
	ErrTooLargeStakeAmount    = errors.New("farming: unstake amount exceeds stake")
	ErrZeroStakeAmount        = errors.New("farming: stake amount must be provided for a fungible farm")
	ErrNoEnoughRewards        = errors.New("farming: claim exceeds accrued rewards")
)
