package ledger

import "errors"

// ErrInsufficientBalance is surfaced by Withdraw/Transfer/EnsureCanWithdraw
// whenever the requested amount exceeds the account's free balance.
var ErrInsufficientBalance = errors.New("ledger: insufficient balance")
