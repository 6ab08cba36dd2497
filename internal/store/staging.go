package store

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// StagingStore is a throwaway LevelDB-backed StateStore that holds a
// compressed genesis snapshot (genesis.SaveSnapshot / LoadSnapshot)
// between authoring and applying, apart from the durable Pebble store
// the applied records land in. Mirrors the teacher keeping
// goleveldb and pebble available as interchangeable nodestore backends;
// here the two roles are split explicitly: goleveldb for staging,
// pebble for the durable state.
type StagingStore struct {
	db *leveldb.DB
}

// OpenStagingStore opens an on-disk staging database at dir. Genesis
// loading is a one-shot, offline operation, so callers are expected to
// delete dir afterward.
func OpenStagingStore(dir string) (*StagingStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &StagingStore{db: db}, nil
}

// Close releases the underlying LevelDB handle.
func (s *StagingStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *StagingStore) Get(key []byte) ([]byte, bool, error) {
	v, err := s.db.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (s *StagingStore) Set(key []byte, value []byte) error {
	return s.db.Put(key, value, nil)
}

func (s *StagingStore) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *StagingStore) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		key := append([]byte(nil), iter.Key()...)
		val := append([]byte(nil), iter.Value()...)
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		if !fn(key, val) {
			break
		}
	}
	return iter.Error()
}
