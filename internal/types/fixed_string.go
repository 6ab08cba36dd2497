// Package types holds the primitive value types shared by every core
// module: fixed-size identifiers, balances and block numbers.
package types

import "strings"

// FixedStringSize is the width, in bytes, of a FixedString.
const FixedStringSize = 16

// FixedString is a 16-byte inline ASCII identifier. It avoids heap
// allocation in hot paths and gives every identifier kind (asset symbol,
// pool ID, farm ID, NFT class/token ID) a natural total order and a fixed
// wire size: 16 raw bytes, NUL-padded on the right.
type FixedString [FixedStringSize]byte

// punctuation bytes allowed anywhere in a valid identifier except as the
// very first byte.
const punctuation = ".-_"

// NewFixedString builds a FixedString from a source string, truncating to
// FixedStringSize bytes if longer, and right-padding with NUL if shorter.
func NewFixedString(s string) FixedString {
	var f FixedString
	copy(f[:], s)
	return f
}

// IsEmpty reports whether the identifier is the empty sentinel (a leading
// NUL byte).
func (f FixedString) IsEmpty() bool {
	return f[0] == 0
}

// String renders the identifier as a Go string, trimming the trailing NUL
// padding.
func (f FixedString) String() string {
	n := len(f)
	for n > 0 && f[n-1] == 0 {
		n--
	}
	return string(f[:n])
}

// IsValidID reports whether f is a valid identifier: the first byte must
// not be one of {'.', '-', '_', NUL}, and every byte must be either a
// Latin letter or one of those four punctuation bytes (NUL included, to
// allow right-padding).
func IsValidID(f FixedString) bool {
	if f[0] == 0 || strings.IndexByte(punctuation, f[0]) >= 0 {
		return false
	}
	for _, b := range f {
		if isLatinLetter(b) {
			continue
		}
		if b == 0 || strings.IndexByte(punctuation, b) >= 0 {
			continue
		}
		return false
	}
	return true
}

func isLatinLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsValidSymbol is an alias for IsValidID: asset symbols follow the exact
// same validation rule as any other identifier.
func IsValidSymbol(f FixedString) bool {
	return IsValidID(f)
}

// IsValidName additionally allows the empty identifier (a name is
// optional almost everywhere it appears).
func IsValidName(f FixedString) bool {
	if f.IsEmpty() {
		return true
	}
	return IsValidID(f)
}
