package store

import (
	"bytes"
	"errors"
	"log"
	"os"

	"github.com/cockroachdb/pebble"
)

// ErrClosed is returned by every PebbleStore method once Close has run.
var ErrClosed = errors.New("store: closed")

// PebbleStore implements StateStore against a durable cockroachdb/pebble
// database, adapted from the teacher's pebble-backed database.DB: same
// Get/Set/Delete shape, same prefix iterator, generalized from byte-slice
// ledger-object keys to our namespaced keylet keys. The injected
// *log.Logger follows the teacher's own plain stdlib-log usage
// (internal/rpc/*.go) rather than a structured logging library.
type PebbleStore struct {
	db     *pebble.DB
	logger *log.Logger
}

// OpenPebbleStore opens (or creates) a pebble database at dir, logging to
// a new stderr logger prefixed "store: ". Use OpenPebbleStoreWithLogger to supply one of
// your own.
func OpenPebbleStore(dir string) (*PebbleStore, error) {
	return OpenPebbleStoreWithLogger(dir, log.New(os.Stderr, "store: ", log.LstdFlags))
}

// OpenPebbleStoreWithLogger opens (or creates) a pebble database at dir,
// logging open/close lifecycle events through logger.
func OpenPebbleStoreWithLogger(dir string, logger *log.Logger) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		logger.Printf("failed to open pebble store at %s: %v", dir, err)
		return nil, err
	}
	logger.Printf("opened pebble store at %s", dir)
	return &PebbleStore{db: db, logger: logger}, nil
}

// Close releases the underlying pebble database.
func (p *PebbleStore) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	if err != nil {
		p.logger.Printf("error closing pebble store: %v", err)
	} else {
		p.logger.Printf("closed pebble store")
	}
	return err
}

func (p *PebbleStore) Get(key []byte) ([]byte, bool, error) {
	if p.db == nil {
		return nil, false, ErrClosed
	}
	v, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer closer.Close()
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (p *PebbleStore) Set(key []byte, value []byte) error {
	if p.db == nil {
		return ErrClosed
	}
	return p.db.Set(key, value, pebble.Sync)
}

func (p *PebbleStore) Delete(key []byte) error {
	if p.db == nil {
		return ErrClosed
	}
	return p.db.Delete(key, pebble.Sync)
}

func (p *PebbleStore) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	if p.db == nil {
		return ErrClosed
	}
	upper := prefixUpperBound(prefix)
	iter, err := p.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upper})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()
		if !bytes.HasPrefix(key, prefix) {
			break
		}
		keyCopy := append([]byte(nil), key...)
		valCopy := append([]byte(nil), iter.Value()...)
		if !fn(keyCopy, valCopy) {
			break
		}
	}
	return iter.Error()
}

// prefixUpperBound returns the smallest key greater than every key with
// the given prefix, or nil if the prefix is all 0xff bytes (meaning
// unbounded).
func prefixUpperBound(prefix []byte) []byte {
	upper := append([]byte(nil), prefix...)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] == 0xff {
			upper = upper[:i]
			continue
		}
		upper[i]++
		return upper[:i+1]
	}
	return nil
}
