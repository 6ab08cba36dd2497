package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dexcore/ledger/internal/types"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "create AMM pools, manage liquidity and swap assets",
}

var poolCreateCmd = &cobra.Command{
	Use:   "create [issuer] [pool-id] [total-fee] [exchange-fee] [symbol=amount...]",
	Short: "register a new AMM pool seeded with the given symbol amounts",
	Args:  cobra.MinimumNArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		var totalFee, exchangeFee uint32
		if _, err := fmt.Sscanf(args[2], "%d", &totalFee); err != nil {
			return fmt.Errorf("invalid total-fee %q: %w", args[2], err)
		}
		if _, err := fmt.Sscanf(args[3], "%d", &exchangeFee); err != nil {
			return fmt.Errorf("invalid exchange-fee %q: %w", args[3], err)
		}

		symbolData := make(map[types.FixedString]types.Balance)
		for _, pair := range args[4:] {
			symbol, amountStr, err := splitPair(pair)
			if err != nil {
				return err
			}
			amount, err := balance(amountStr)
			if err != nil {
				return err
			}
			symbolData[fixed(symbol)] = amount
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := n.Pools.CreateAmmPool(account(args[0]), fixed(args[1]), totalFee, exchangeFee, symbolData, ""); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var poolSwapCmd = &cobra.Command{
	Use:   "swap [who] [pool-id] [asset-in] [amount-in] [asset-out] [min-amount-out]",
	Short: "swap one pool asset for another",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		amountIn, err := balance(args[3])
		if err != nil {
			return err
		}
		minOut, err := balance(args[5])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := n.Pools.SwapAssetInPool(account(args[0]), fixed(args[1]), fixed(args[2]), amountIn, fixed(args[4]), minOut); err != nil {
			return err
		}
		return n.commit(0)
	},
}

func splitPair(s string) (key, value string, err error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("expected symbol=amount, got %q", s)
}

func init() {
	poolCmd.AddCommand(poolCreateCmd, poolSwapCmd)
}
