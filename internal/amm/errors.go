// Package amm implements the multi-asset constant-product AMM pool:
// registration, liquidity add/remove with fair-share LP accounting, and
// swaps priced by the constant-product invariant with a proportional fee
// skim. Grounded on pallets/pool-amm/src/lib.rs.
//
// Two behaviors from the source are preserved verbatim rather than
// silently corrected, per the documented open questions: swap_asset
// increments reserve_out instead of decrementing it, and the
// protocol-share fee-skim mint overwrites the swapper's share balance
// instead of accumulating into it. Both are flagged at their call sites
// below.
package amm

import "errors"

var (
	ErrInvalidPoolID          = errors.New("amm: invalid pool id")
	ErrPoolAlreadyExists      = errors.New("amm: pool already exists")
	ErrPoolNotExists          = errors.New("amm: pool does not exist")
	ErrInvalidOwner           = errors.New("amm: caller is not the pool owner")
	ErrTooLargeFee            = errors.New("amm: fee out of bounds")
	ErrTooManySymbols         = errors.New("amm: too many symbols")
	ErrEmptySymbols           = errors.New("amm: symbol set is empty")
	ErrHasRemainingShares     = errors.New("amm: pool still has outstanding shares")
	ErrSymbolNotExistsInAsset = errors.New("amm: symbol is not a registered asset")
	ErrSymbolNotExistsInPool  = errors.New("amm: symbol is not part of this pool")
	ErrInvalidBalance         = errors.New("amm: amount must be positive")
	ErrZeroAmount             = errors.New("amm: computed deposit amount is zero")
	ErrZeroShares             = errors.New("amm: computed shares are zero")
	ErrNoEnoughShares         = errors.New("amm: insufficient shares")
	ErrTooLessSharesAmount    = errors.New("amm: withdrawal below requested minimum")
	ErrNoEnoughSwapAmount     = errors.New("amm: swap output below minimum")
	ErrWrongInvariant         = errors.New("amm: invariant decreased")
)
