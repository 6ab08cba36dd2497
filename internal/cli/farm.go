package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dexcore/ledger/internal/types"
)

var farmCmd = &cobra.Command{
	Use:   "farm",
	Short: "create farms and stake, unstake and claim rewards",
}

var farmCreateCmd = &cobra.Command{
	Use:   "create [owner] [farm-id] [shares-asset] [stake-asset] [shares-per-block] [reward-weight]",
	Short: "create a new fungible-stake farm",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		sharesPerBlock, err := balance(args[4])
		if err != nil {
			return err
		}
		var rewardWeight uint8
		if _, err := fmt.Sscanf(args[5], "%d", &rewardWeight); err != nil {
			return fmt.Errorf("invalid reward-weight %q: %w", args[5], err)
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

		stakeAsset := fixed(args[3])
		if err := n.Farms.CreateFarm(
			account(args[0]), fixed(args[1]), fixed(args[2]), &stakeAsset, nil, nil, sharesPerBlock, rewardWeight,
		); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var farmStakeCmd = &cobra.Command{
	Use:   "stake [who] [farm-id] [amount] [block]",
	Short: "stake into a fungible-stake farm at the given block height",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := balance(args[2])
		if err != nil {
			return err
		}
		var block uint64
		if _, err := fmt.Sscanf(args[3], "%d", &block); err != nil {
			return fmt.Errorf("invalid block %q: %w", args[3], err)
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

		if err := n.Farms.StakeAsset(account(args[0]), fixed(args[1]), &amount, types.BlockNumber(block)); err != nil {
			return err
		}
		return n.commit(block)
	},
}

var farmClaimCmd = &cobra.Command{
	Use:   "claim [who] [farm-id] [reward-amount] [block]",
	Short: "claim up to reward-amount of accrued farm rewards",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := balance(args[2])
		if err != nil {
			return err
		}
		var block uint64
		if _, err := fmt.Sscanf(args[3], "%d", &block); err != nil {
			return fmt.Errorf("invalid block %q: %w", args[3], err)
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

		if err := n.Farms.Claim(account(args[0]), fixed(args[1]), amount, types.BlockNumber(block)); err != nil {
			return err
		}
		return n.commit(block)
	},
}

func init() {
	farmCmd.AddCommand(farmCreateCmd, farmStakeCmd, farmClaimCmd)
}
