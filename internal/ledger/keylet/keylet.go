// Package keylet builds deterministic, namespaced state-store keys for
// every record kind the core persists. Each record kind gets its own
// single-byte space prefix followed by its natural identifier bytes,
// mirroring the teacher's keylet package (one function per entry type,
// a space byte distinguishing entry kinds sharing the same key space).
package keylet

import "github.com/dexcore/ledger/internal/types"

// Space bytes, one per record kind, kept disjoint so no two kinds can
// ever collide regardless of identifier content.
const (
	spaceAssetOwner      byte = 'o'
	spaceAssetInfo       byte = 'i'
	spaceAssetPermission byte = 'p'
	spaceBalance         byte = 'b'
	spaceNftClass        byte = 'c'
	spaceToken           byte = 't'
	spaceOwnerIndex      byte = 'x'
	spacePool            byte = 'P'
	spacePoolOwner       byte = 'O'
	spacePoolKind        byte = 'K'
	spaceFarm            byte = 'F'
	spaceFarmer          byte = 'f'
)

func key(space byte, parts ...[]byte) []byte {
	n := 1
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	out = append(out, space)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func id(f types.FixedString) []byte {
	b := make([]byte, len(f))
	copy(b, f[:])
	return b
}

func acct(a types.Account) []byte {
	b := make([]byte, len(a))
	copy(b, a[:])
	return b
}

// AssetOwner is the key for the symbol -> owning account map.
func AssetOwner(symbol types.FixedString) []byte { return key(spaceAssetOwner, id(symbol)) }

// AssetInfo is the key for the symbol -> AssetInfo map.
func AssetInfo(symbol types.FixedString) []byte { return key(spaceAssetInfo, id(symbol)) }

// AssetPermission is the key for the admin-set registration gate per symbol.
func AssetPermission(symbol types.FixedString) []byte { return key(spaceAssetPermission, id(symbol)) }

// Balance is the key for a (symbol, account) free-balance entry.
func Balance(symbol types.FixedString, account types.Account) []byte {
	return key(spaceBalance, id(symbol), acct(account))
}

// NftClass is the key for a class_id -> NftClass map entry.
func NftClass(classID types.FixedString) []byte { return key(spaceNftClass, id(classID)) }

// Token is the key for the global token_id -> TokenInfo map entry.
func Token(tokenID types.FixedString) []byte { return key(spaceToken, id(tokenID)) }

// OwnerIndex is the key for the (account, (class_id, token_id)) owner
// index entry.
func OwnerIndex(account types.Account, classID, tokenID types.FixedString) []byte {
	return key(spaceOwnerIndex, acct(account), id(classID), id(tokenID))
}

// Pool is the key for a pool_id -> PoolInfo map entry.
func Pool(pid types.FixedString) []byte { return key(spacePool, id(pid)) }

// PoolOwner is the key for a pool_id -> owning account map entry.
func PoolOwner(pid types.FixedString) []byte { return key(spacePoolOwner, id(pid)) }

// PoolKind is the key for the pool manager's pool_id -> kind tag.
func PoolKind(pid types.FixedString) []byte { return key(spacePoolKind, id(pid)) }

// Farm is the key for a farm_id -> Farm map entry.
func Farm(farmID types.FixedString) []byte { return key(spaceFarm, id(farmID)) }

// Farmer is the key for a (farm_id, account) -> Farmer map entry.
func Farmer(farmID types.FixedString, account types.Account) []byte {
	return key(spaceFarmer, id(farmID), acct(account))
}
