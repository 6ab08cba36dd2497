package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "register, mint, burn and transfer fungible assets",
}

var assetRegisterCmd = &cobra.Command{
	Use:   "register [issuer] [symbol] [name] [precision] [initial-supply]",
	Short: "register a new fungible asset",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		var precision uint8
		if _, err := fmt.Sscanf(args[3], "%d", &precision); err != nil {
			return fmt.Errorf("invalid precision %q: %w", args[3], err)
		}
		supply, err := balance(args[4])
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

		if err := n.Assets.RegisterAsset(
			account(args[0]), fixed(args[1]), fixed(args[2]), precision, true, true, "", supply,
		); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var assetMintCmd = &cobra.Command{
	Use:   "mint [issuer] [symbol] [amount]",
	Short: "mint additional supply of an asset to its issuer",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := balance(args[2])
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

		if err := n.Assets.MintAsset(account(args[0]), fixed(args[1]), amount); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var assetTransferCmd = &cobra.Command{
	Use:   "transfer [from] [symbol] [to] [amount]",
	Short: "transfer an asset balance between two accounts",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := balance(args[3])
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

		if err := n.Assets.TransferAsset(account(args[0]), fixed(args[1]), account(args[2]), amount); err != nil {
			return err
		}
		return n.commit(0)
	},
}

func init() {
	assetCmd.AddCommand(assetRegisterCmd, assetMintCmd, assetTransferCmd)
}
