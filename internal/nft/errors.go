// Package nft implements NFT classes owning token sets, per-token
// ownership, and mint/burn/transfer over those tokens. Grounded on
// pallets/nft/src/lib.rs, with the documented global token-ID collision
// gap closed: mint_token additionally checks a global index before
// insertion (see ErrTokenIDAlreadyExistsGlobally).
package nft

import "errors"

var (
	ErrNftClassIDAlreadyExisted = errors.New("nft: class id already exists")
	ErrNftClassIDNotExisted     = errors.New("nft: class id does not exist")
	ErrNoClassPermission        = errors.New("nft: caller is not the class owner")
	ErrInvalidTokenOwner        = errors.New("nft: caller is not the token owner")
	ErrNoPermission             = errors.New("nft: owner index disagrees")
	ErrCannotDestroyNftClass    = errors.New("nft: class still owns tokens")
	ErrTokenIDAlreadyExisted    = errors.New("nft: token id already exists in this class")
	ErrTokenIDNotExisted        = errors.New("nft: token id does not exist")
	// ErrTokenIDAlreadyExistsGlobally is the core's closing of the
	// documented gap: TokenInfos is keyed by token_id alone, so without
	// this check a mint into a second class could silently overwrite a
	// token already minted in a different class.
	ErrTokenIDAlreadyExistsGlobally = errors.New("nft: token id already exists in another class")
)
