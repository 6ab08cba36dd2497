package cli

import (
	"github.com/spf13/cobra"

	"github.com/dexcore/ledger/internal/genesis"
)

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "load and apply a genesis seed document",
}

var genesisApplyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "parse a genesis JSON document and apply it to the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g, err := genesis.Load(args[0])
		if err != nil {
			return err
		}

		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := g.Apply(genesis.Stores{
			Assets: n.Assets, Nfts: n.Nfts, Pools: n.Pools, Farms: n.Farms,
		}); err != nil {
			return err
		}
		return n.commit(0)
	},
}

var genesisSnapshotSaveCmd = &cobra.Command{
	Use:   "snapshot-save [json-path] [staging-dir]",
	Short: "compress a genesis JSON document into a staged LZ4 snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := genesis.Load(args[0])
		if err != nil {
			return err
		}
		return genesis.SaveSnapshot(args[1], g)
	},
}

var genesisSnapshotApplyCmd = &cobra.Command{
	Use:   "snapshot-apply [staging-dir]",
	Short: "decompress a staged genesis snapshot and apply it to the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		g, err := genesis.LoadSnapshot(args[0])
		if err != nil {
			return err
		}

		n, err := openNode(cfg)
		if err != nil {
			return err
		}
		defer n.close()

		if err := g.Apply(genesis.Stores{
			Assets: n.Assets, Nfts: n.Nfts, Pools: n.Pools, Farms: n.Farms,
		}); err != nil {
			return err
		}
		return n.commit(0)
	},
}

func init() {
	genesisCmd.AddCommand(genesisApplyCmd, genesisSnapshotSaveCmd, genesisSnapshotApplyCmd)
}
