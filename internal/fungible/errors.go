// Package fungible implements register/mint/burn/transfer of per-symbol
// fungible asset balances, owner-gated per asset. Grounded on
// pallets/fungible-asset/src/lib.rs, with the Currency collaborator
// replaced by internal/ledger.Ledger.
package fungible

import "errors"

var (
	ErrInvalidAssetSymbol      = errors.New("fungible: invalid asset symbol")
	ErrInvalidAssetName        = errors.New("fungible: invalid asset name")
	ErrInvalidPrecision        = errors.New("fungible: precision exceeds maximum")
	ErrAssetAlreadyExists      = errors.New("fungible: asset already exists")
	ErrAssetNotAllowedToRegister = errors.New("fungible: asset registration not permitted")
	ErrAssetNotExists          = errors.New("fungible: asset does not exist")
	ErrAssetIsNotMintable      = errors.New("fungible: asset is not mintable")
	ErrAssetIsNotBurnable      = errors.New("fungible: asset is not burnable")
	ErrInvalidOwner            = errors.New("fungible: caller is not the asset owner")
	ErrNoEnoughBalance         = errors.New("fungible: insufficient free balance")
)
