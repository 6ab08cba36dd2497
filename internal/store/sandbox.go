package store

import "bytes"

// Sandbox wraps a StateStore and buffers every Set/Delete in memory,
// the way the teacher's PaymentSandbox buffers modifications/insertions/
// deletions on top of a LedgerView. A module entry point opens one
// Sandbox per call, reads and writes exclusively through it, and the
// caller either Commits on success or simply discards the Sandbox on
// error — discarding is the rollback, there is nothing to undo because
// nothing was ever written to the parent store.
type Sandbox struct {
	parent StateStore

	modifications map[string][]byte
	deletions     map[string]bool
}

// NewSandbox opens a sandbox over a parent StateStore.
func NewSandbox(parent StateStore) *Sandbox {
	return &Sandbox{
		parent:        parent,
		modifications: make(map[string][]byte),
		deletions:     make(map[string]bool),
	}
}

// Get reads the sandbox's own writes first so a call always observes
// its own prior writes within the same Sandbox, then falls through to
// the parent store.
func (s *Sandbox) Get(key []byte) ([]byte, bool, error) {
	k := string(key)
	if s.deletions[k] {
		return nil, false, nil
	}
	if v, ok := s.modifications[k]; ok {
		return v, true, nil
	}
	return s.parent.Get(key)
}

// Set buffers a write; nothing reaches the parent store until Commit.
func (s *Sandbox) Set(key []byte, value []byte) error {
	k := string(key)
	delete(s.deletions, k)
	s.modifications[k] = append([]byte(nil), value...)
	return nil
}

// Delete buffers a deletion; nothing reaches the parent store until
// Commit.
func (s *Sandbox) Delete(key []byte) error {
	k := string(key)
	delete(s.modifications, k)
	s.deletions[k] = true
	return nil
}

// Iterate walks the prefix range as seen through the sandbox: parent
// entries shadowed by a buffered deletion are skipped, buffered
// modifications are substituted in, and buffered insertions under the
// prefix that the parent doesn't yet have are appended.
func (s *Sandbox) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	seen := make(map[string]bool, len(s.modifications))

	stop := false
	err := s.parent.Iterate(prefix, func(key, value []byte) bool {
		k := string(key)
		seen[k] = true
		if s.deletions[k] {
			return true
		}
		if v, ok := s.modifications[k]; ok {
			value = v
		}
		if !fn(key, value) {
			stop = true
			return false
		}
		return true
	})
	if err != nil || stop {
		return err
	}

	for k, v := range s.modifications {
		if seen[k] {
			continue
		}
		if !bytes.HasPrefix([]byte(k), prefix) {
			continue
		}
		if !fn([]byte(k), v) {
			break
		}
	}
	return nil
}

// Commit flushes every buffered write to the parent store, in an
// arbitrary but deterministic-enough order (callers never observe
// cross-key ordering within a single commit). This is the only point
// at which a Sandbox's effects become externally visible.
func (s *Sandbox) Commit() error {
	for k := range s.deletions {
		if err := s.parent.Delete([]byte(k)); err != nil {
			return err
		}
	}
	for k, v := range s.modifications {
		if err := s.parent.Set([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}
