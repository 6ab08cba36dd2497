package nft

import "github.com/dexcore/ledger/internal/types"

// NftClass is a class record keyed by class ID: owner, an opaque data
// blob, and the set of token IDs it currently owns.
type NftClass struct {
	Owner  types.Account
	Data   string
	Tokens []types.FixedString
}

func (c NftClass) hasToken(tokenID types.FixedString) bool {
	for _, t := range c.Tokens {
		if t == tokenID {
			return true
		}
	}
	return false
}

func (c *NftClass) addToken(tokenID types.FixedString) {
	c.Tokens = append(c.Tokens, tokenID)
}

func (c *NftClass) removeToken(tokenID types.FixedString) {
	out := c.Tokens[:0]
	for _, t := range c.Tokens {
		if t != tokenID {
			out = append(out, t)
		}
	}
	c.Tokens = out
}

// TokenInfo is a token record keyed globally by token ID: owner,
// metadata, and an opaque data blob.
type TokenInfo struct {
	Owner    types.Account
	ClassID  types.FixedString
	Metadata string
	Data     string
}
