// Command dexnode is the CLI entry point over the dex core modules.
package main

import "github.com/dexcore/ledger/internal/cli"

func main() {
	cli.Execute()
}
