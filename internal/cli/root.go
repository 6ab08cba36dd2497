// Package cli wires cobra commands over the dex core modules, mirroring
// the teacher's internal/cli command tree (root.go + one file per
// command group) and internal/config layering.
package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dexcore/ledger/internal/config"
)

var configFile string

var rootLogger = log.New(os.Stderr, "dexnode: ", log.LstdFlags)

var rootCmd = &cobra.Command{
	Use:   "dexnode",
	Short: "dexnode - fungible assets, NFTs, AMM pools and farming over a local store",
	Long: `dexnode is a standalone state machine for a fungible-asset,
NFT, AMM-pool and farming core. It is not a network node: every
subcommand opens the configured store, performs one operation, and
commits or reports the error and leaves the store untouched.`,
}

// Execute runs the root command. Called once from cmd/dexnode/main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootLogger.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "path to dexnode.toml (defaults if empty)")

	rootCmd.AddCommand(genesisCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(nftCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(farmCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configFile)
}
