package store

import (
	"fmt"

	"github.com/pierrec/lz4"
)

// CompressGenesisBlob compresses a bulk genesis-record blob with LZ4
// before it's staged, the same plug-in the teacher's nodestore
// compression layer wires in for ledger-object blobs.
func CompressGenesisBlob(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	bound := lz4.CompressBlockBound(len(data))
	out := make([]byte, bound)
	n, err := lz4.CompressBlock(data, out, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	return out[:n], nil
}

// DecompressGenesisBlob reverses CompressGenesisBlob. origSize must be
// the exact uncompressed length (the genesis loader always records it
// alongside the compressed blob).
func DecompressGenesisBlob(data []byte, origSize int) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	out := make([]byte, origSize)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	return out[:n], nil
}
