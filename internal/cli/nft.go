package cli

import (
	"github.com/spf13/cobra"
)

var nftCmd = &cobra.Command{
	Use:   "nft",
	Short: "create NFT classes and mint, burn and transfer tokens",
}

var nftCreateClassCmd = &cobra.Command{
	Use:   "create-class [owner] [class-id] [data]",
	Short: "create a new NFT class",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := n.Nfts.CreateNftClass(account(args[0]), fixed(args[1]), args[2]); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var nftMintCmd = &cobra.Command{
	Use:   "mint [owner] [class-id] [token-id] [metadata]",
	Short: "mint a token into an existing class",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := n.Nfts.MintToken(account(args[0]), fixed(args[1]), fixed(args[2]), args[3], ""); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var nftTransferCmd = &cobra.Command{
	Use:   "transfer [from] [to] [class-id] [token-id]",
	Short: "transfer a token between owners",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := n.Nfts.TransferToken(account(args[0]), account(args[1]), fixed(args[2]), fixed(args[3])); err != nil {
			return err
		}
		return n.commit(0)
	},
}

func init() {
	nftCmd.AddCommand(nftCreateClassCmd, nftMintCmd, nftTransferCmd)
}
