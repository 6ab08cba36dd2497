package cli

import (
	"github.com/dexcore/ledger/internal/types"
)

func account(s string) types.Account {
	return types.NewAccount([]byte(s))
}

func fixed(s string) types.FixedString {
	return types.NewFixedString(s)
}

func balance(s string) (types.Balance, error) {
	return types.ParseBalance(s)
}
