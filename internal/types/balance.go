package types

import (
	"errors"
	"math/big"
)

// ErrAmountOverflow is returned by checked arithmetic when a balance delta
// would over- or underflow its 128-bit range.
var ErrAmountOverflow = errors.New("amount overflow")

var (
	maxBalance = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)) // 2^128 - 1
	maxAmount  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)) // 2^127 - 1
	minAmount  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))                // -2^127
)

// Balance is an unsigned 128-bit quantity: asset free balances, pool
// reserves, LP share counts and swap volumes are all expressed in it.
type Balance struct{ v big.Int }

// Amount is a signed 128-bit quantity used for balance deltas
// (update_balance and similar signed adjustments).
type Amount struct{ v big.Int }

// BlockNumber is the chain's monotonically increasing block height.
type BlockNumber uint64

// NewBalance constructs a Balance from a uint64.
func NewBalance(v uint64) Balance {
	var b Balance
	b.v.SetUint64(v)
	return b
}

// NewAmount constructs an Amount from an int64.
func NewAmount(v int64) Amount {
	var a Amount
	a.v.SetInt64(v)
	return a
}

// ParseBalance parses a base-10 string into a Balance. Used to round-trip
// balances through the storage codec, which serializes big integers as
// decimal strings rather than teaching every record type about big.Int.
func ParseBalance(s string) (Balance, error) {
	var b Balance
	if _, ok := b.v.SetString(s, 10); !ok {
		return Balance{}, errors.New("types: invalid balance string")
	}
	return b, nil
}

// ZeroBalance is the additive identity.
func ZeroBalance() Balance { return Balance{} }

// IsZero reports whether b is zero.
func (b Balance) IsZero() bool { return b.v.Sign() == 0 }

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int { return a.v.Sign() }

// Cmp compares two balances the way big.Int.Cmp does.
func (b Balance) Cmp(other Balance) int { return b.v.Cmp(&other.v) }

// String renders the balance in base 10.
func (b Balance) String() string { return b.v.String() }

// String renders the amount in base 10.
func (a Amount) String() string { return a.v.String() }

// Uint64 returns the balance truncated to a uint64 (only safe for values
// already known to fit; callers that don't control the magnitude should
// use Cmp against a known bound first).
func (b Balance) Uint64() uint64 { return b.v.Uint64() }

// Add returns a+b, failing with ErrAmountOverflow if the sum exceeds
// 2^128-1.
func (a Balance) Add(b Balance) (Balance, error) {
	var out Balance
	out.v.Add(&a.v, &b.v)
	if out.v.Cmp(maxBalance) > 0 {
		return Balance{}, ErrAmountOverflow
	}
	return out, nil
}

// Sub returns a-b, failing with ErrAmountOverflow if b > a (Balance is
// unsigned, so this doubles as the underflow check).
func (a Balance) Sub(b Balance) (Balance, error) {
	if a.v.Cmp(&b.v) < 0 {
		return Balance{}, ErrAmountOverflow
	}
	var out Balance
	out.v.Sub(&a.v, &b.v)
	return out, nil
}

// Mul returns a*b, failing with ErrAmountOverflow on overflow.
func (a Balance) Mul(b Balance) (Balance, error) {
	var out Balance
	out.v.Mul(&a.v, &b.v)
	if out.v.Cmp(maxBalance) > 0 {
		return Balance{}, ErrAmountOverflow
	}
	return out, nil
}

// MulDiv computes floor(a*mul/div) using unbounded intermediate
// precision, the pattern every fair-share and swap-return computation in
// the AMM module relies on. div must be non-zero.
func (a Balance) MulDiv(mul, div Balance) Balance {
	var num, out Balance
	num.v.Mul(&a.v, &mul.v)
	out.v.Div(&num.v, &div.v)
	return out
}

// Div returns floor(a/b). Division by zero panics, matching the
// stdlib's big.Int behavior; callers must not reach this with a
// zero divisor (every call site is guarded by an explicit check).
func (a Balance) Div(b Balance) Balance {
	var out Balance
	out.v.Div(&a.v, &b.v)
	return out
}

// Min returns the smaller of two balances.
func Min(a, b Balance) Balance {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// MaxBalance returns the largest representable Balance (2^128-1), used
// to seed a running minimum the way the fair-share computation does.
func MaxBalance() Balance {
	var b Balance
	b.v.Set(maxBalance)
	return b
}

// CheckedAdd adds a signed Amount to the Balance, failing with
// ErrAmountOverflow if the result would be negative or exceed 2^128-1.
func (b Balance) CheckedAdd(delta Amount) (Balance, error) {
	var out Balance
	out.v.Add(&b.v, &delta.v)
	if out.v.Sign() < 0 || out.v.Cmp(maxBalance) > 0 {
		return Balance{}, ErrAmountOverflow
	}
	return out, nil
}

// Neg returns -a, failing with ErrAmountOverflow if a is the signed
// minimum (whose negation doesn't fit in the positive range).
func (a Amount) Neg() (Amount, error) {
	var out Amount
	out.v.Neg(&a.v)
	if out.v.Cmp(maxAmount) > 0 || out.v.Cmp(minAmount) < 0 {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

// AmountFromBalance converts an unsigned Balance to a signed Amount,
// failing with ErrAmountOverflow if the balance exceeds the signed max.
func AmountFromBalance(b Balance) (Amount, error) {
	if b.v.Cmp(maxAmount) > 0 {
		return Amount{}, ErrAmountOverflow
	}
	var a Amount
	a.v.Set(&b.v)
	return a, nil
}

// IntegerSqrt returns floor(sqrt(v)) via Newton's method, starting the
// guess at floor((v+1)/2) and stopping once the guess stops improving on
// the running estimate — the exact iteration the original implementation
// used, preserved here bit-for-bit rather than swapped for big.Int's
// built-in (also-exact) Sqrt so the documented starting point and halting
// condition stay auditable against the source.
func IntegerSqrt(v Balance) Balance {
	one := big.NewInt(1)
	two := big.NewInt(2)

	guess := new(big.Int).Add(&v.v, one)
	guess.Rsh(guess, 1) // (v+1) >> 1, i.e. floor((v+1)/2)

	res := new(big.Int).Set(&v.v)

	for guess.Cmp(res) < 0 {
		res.Set(guess)
		// guess = (v/guess + guess) / 2
		next := new(big.Int).Div(&v.v, guess)
		next.Add(next, guess)
		next.Div(next, two)
		guess.Set(next)
	}

	var out Balance
	out.v.Set(res)
	return out
}
