// Package indexer appends every committed ledger.Event to a relational
// side table for external query, mirroring the teacher's
// internal/storage/relationaldb: a database/sql.DB behind a driver name
// and a DSN, Postgres in production (lib/pq) with a SQLite fallback
// (modernc.org/sqlite) for the embedded/standalone case — the same
// dual-driver split the teacher's RepositoryManager abstracts over.
package indexer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sort"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/dexcore/ledger/internal/ledger"
)

// DriverPostgres and DriverSQLite are the two database/sql driver names
// this package knows how to open and initialize a schema for.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Sink appends committed events to a SQL side table. The injected
// *log.Logger matches the teacher's RepositoryManager, which logs every
// connect/migrate/query failure through a plain stdlib logger rather
// than a structured logging library.
type Sink struct {
	db     *sql.DB
	driver string
	logger *log.Logger
}

// Open opens driver (DriverPostgres or DriverSQLite) at dsn and ensures
// the events table exists, logging to a new stderr logger prefixed
// "indexer: ". Use
// OpenWithLogger to supply one of your own.
func Open(ctx context.Context, driver, dsn string) (*Sink, error) {
	return OpenWithLogger(ctx, driver, dsn, log.New(os.Stderr, "indexer: ", log.LstdFlags))
}

// OpenWithLogger opens driver (DriverPostgres or DriverSQLite) at dsn and
// ensures the events table exists, logging connect/schema/insert
// failures through logger.
func OpenWithLogger(ctx context.Context, driver, dsn string, logger *log.Logger) (*Sink, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("indexer: unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		logger.Printf("failed to open %s: %v", driver, err)
		return nil, fmt.Errorf("indexer: open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		logger.Printf("failed to ping %s: %v", driver, err)
		return nil, fmt.Errorf("indexer: ping %s: %w", driver, err)
	}
	s := &Sink{db: db, driver: driver, logger: logger}
	if err := s.initSchema(ctx, driver); err != nil {
		db.Close()
		logger.Printf("failed to init schema: %v", err)
		return nil, err
	}
	logger.Printf("opened %s indexer sink", driver)
	return s, nil
}

// Close releases the underlying database handle.
func (s *Sink) Close() error {
	s.logger.Printf("closing %s indexer sink", s.driver)
	return s.db.Close()
}

func (s *Sink) initSchema(ctx context.Context, driver string) error {
	var ddl string
	switch driver {
	case DriverPostgres:
		ddl = `CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			block BIGINT NOT NULL,
			module TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL
		)`
	default: // DriverSQLite
		ddl = `CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			block INTEGER NOT NULL,
			module TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL
		)`
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("indexer: init schema: %w", err)
	}
	return nil
}

// Index appends one committed event at the given block height. Payload
// is flattened to a deterministic "k=v,k=v" string; the raw map isn't a
// SQL-friendly shape and this package has no call for a JSON column.
func (s *Sink) Index(ctx context.Context, block uint64, e ledger.Event) error {
	query := "INSERT INTO events (block, module, kind, payload) VALUES (?, ?, ?, ?)"
	if s.driver == DriverPostgres {
		query = "INSERT INTO events (block, module, kind, payload) VALUES ($1, $2, $3, $4)"
	}
	_, err := s.db.ExecContext(ctx, query, block, e.Module, e.Kind, flattenPayload(e.Payload))
	if err != nil {
		s.logger.Printf("failed to insert event %s.%s at block %d: %v", e.Module, e.Kind, block, err)
		return fmt.Errorf("indexer: insert event: %w", err)
	}
	return nil
}

// IndexAll appends every event in evts at the given block, in order.
func (s *Sink) IndexAll(ctx context.Context, block uint64, evts []ledger.Event) error {
	for _, e := range evts {
		if err := s.Index(ctx, block, e); err != nil {
			return err
		}
	}
	return nil
}

func flattenPayload(payload map[string]string) string {
	if len(payload) == 0 {
		return ""
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		if out != "" {
			out += ","
		}
		out += k + "=" + payload[k]
	}
	return out
}
