package genesis

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dexcore/ledger/internal/store"
)

// snapshotKey is the single staging-store key a snapshot is written
// under; one genesis document per staging directory.
var snapshotKey = []byte("genesis/snapshot")

// SaveSnapshot marshals g to JSON, LZ4-compresses it, and writes the
// result into a throwaway LevelDB staging area at dir, so a genesis
// document can be distributed and loaded as a single compressed blob
// instead of a loose JSON file — the teacher keeps goleveldb and pebble
// both around as interchangeable nodestore backends; here that split is
// genesis staging (goleveldb) versus durable state (pebble).
func SaveSnapshot(dir string, g *Genesis) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("genesis: marshal snapshot: %w", err)
	}
	compressed, err := store.CompressGenesisBlob(raw)
	if err != nil {
		return fmt.Errorf("genesis: compress snapshot: %w", err)
	}

	staging, err := store.OpenStagingStore(dir)
	if err != nil {
		return fmt.Errorf("genesis: open staging store: %w", err)
	}
	defer staging.Close()

	envelope := make([]byte, 8+len(compressed))
	binary.BigEndian.PutUint64(envelope[:8], uint64(len(raw)))
	copy(envelope[8:], compressed)

	if err := staging.Set(snapshotKey, envelope); err != nil {
		return fmt.Errorf("genesis: write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reverses SaveSnapshot: it reads the compressed blob back
// out of the staging store at dir, LZ4-decompresses it, and parses the
// result into a Genesis document ready for Apply.
func LoadSnapshot(dir string) (*Genesis, error) {
	staging, err := store.OpenStagingStore(dir)
	if err != nil {
		return nil, fmt.Errorf("genesis: open staging store: %w", err)
	}
	defer staging.Close()

	envelope, found, err := staging.Get(snapshotKey)
	if err != nil {
		return nil, fmt.Errorf("genesis: read snapshot: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("genesis: no snapshot staged at %s", dir)
	}
	if len(envelope) < 8 {
		return nil, fmt.Errorf("genesis: corrupt snapshot envelope at %s", dir)
	}

	origSize := int(binary.BigEndian.Uint64(envelope[:8]))
	raw, err := store.DecompressGenesisBlob(envelope[8:], origSize)
	if err != nil {
		return nil, fmt.Errorf("genesis: decompress snapshot: %w", err)
	}

	var g Genesis
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("genesis: unmarshal snapshot: %w", err)
	}
	return &g, nil
}
