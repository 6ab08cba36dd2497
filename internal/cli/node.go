package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dexcore/ledger/internal/amm"
	"github.com/dexcore/ledger/internal/config"
	"github.com/dexcore/ledger/internal/farming"
	"github.com/dexcore/ledger/internal/fungible"
	"github.com/dexcore/ledger/internal/indexer"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/nft"
	"github.com/dexcore/ledger/internal/poolmanager"
	"github.com/dexcore/ledger/internal/store"
)

// node bundles one sandboxed call's worth of module handles. Every CLI
// command opens a fresh node, does its work through it, and either
// commits on success or lets the sandbox's writes be discarded on
// error — the same per-call isolation spec.md's core state machine
// requires from any caller, CLI included.
type node struct {
	cfg     *config.Config
	backing store.StateStore
	sandbox *store.Sandbox
	bus     *ledger.Bus

	Assets *fungible.Module
	Nfts   *nft.Module
	Pools  *poolmanager.Module
	Farms  *farming.Module

	sink   *indexer.Sink
	logger *log.Logger
}

func openNode(cfg *config.Config) (*node, error) {
	logger := log.New(os.Stderr, "dexnode: ", log.LstdFlags)

	var backing store.StateStore
	switch cfg.StoreDriver {
	case "pebble":
		p, err := store.OpenPebbleStoreWithLogger(cfg.StorePath, logger)
		if err != nil {
			return nil, fmt.Errorf("cli: opening pebble store: %w", err)
		}
		backing = p
	default: // "memory"
		backing = store.NewMemoryStore()
	}

	var sink *indexer.Sink
	if cfg.IndexerDriver != "" {
		s, err := indexer.OpenWithLogger(context.Background(), cfg.IndexerDriver, cfg.IndexerDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("cli: opening indexer: %w", err)
		}
		sink = s
	}

	sb := store.NewSandbox(backing)
	bus := ledger.NewBus()
	l := ledger.NewStoreLedger(sb)
	assets := fungible.New(sb, l, bus)
	nfts := nft.New(sb, bus)
	ammModule := amm.New(sb, l, assets, bus)
	pools := poolmanager.New(sb, ammModule)
	farms := farming.New(sb, assets, nfts, bus)

	return &node{
		cfg: cfg, backing: backing, sandbox: sb, bus: bus,
		Assets: assets, Nfts: nfts, Pools: pools, Farms: farms,
		sink: sink, logger: logger,
	}, nil
}

// commit flushes the sandbox to the backing store and, if an indexer is
// configured, appends the call's buffered events to it. Called only
// after the command's module call returns a nil error.
func (n *node) commit(block uint64) error {
	if err := n.sandbox.Commit(); err != nil {
		n.logger.Printf("commit failed at block %d: %v", block, err)
		return err
	}
	if n.sink != nil {
		if err := n.sink.IndexAll(context.Background(), block, n.bus.Drain()); err != nil {
			n.logger.Printf("indexing events failed at block %d: %v", block, err)
			return fmt.Errorf("cli: indexing events: %w", err)
		}
	}
	n.logger.Printf("committed block %d", block)
	return nil
}

func (n *node) close() {
	if closer, ok := n.backing.(interface{ Close() error }); ok {
		closer.Close()
	}
	if n.sink != nil {
		n.sink.Close()
	}
}
