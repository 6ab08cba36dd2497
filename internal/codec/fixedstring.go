package codec

import (
	"errors"

	"github.com/dexcore/ledger/internal/types"
)

// ErrTooLong is returned by ParseFixedString when the source string does
// not fit in FixedStringSize bytes.
var ErrTooLong = errors.New("identifier exceeds 16 bytes")

// ParseFixedString parses s into a FixedString without truncation,
// failing if it overflows. Round-trips with FixedString.String for any
// input of at most types.FixedStringSize bytes, the identifier idempotence
// property the wire format relies on.
func ParseFixedString(s string) (types.FixedString, error) {
	if len(s) > types.FixedStringSize {
		return types.FixedString{}, ErrTooLong
	}
	return types.NewFixedString(s), nil
}
