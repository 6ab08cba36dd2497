package indexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexcore/ledger/internal/ledger"
)

func TestSinkIndexesEventsSQLite(t *testing.T) {
	ctx := context.Background()
	sink, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer sink.Close()

	events := []ledger.Event{
		{Module: "fungible", Kind: "AssetRegistered", Payload: map[string]string{"symbol": "DOT"}},
		{Module: "amm", Kind: "Swap", Payload: map[string]string{"pool": "P"}},
	}
	require.NoError(t, sink.IndexAll(ctx, 42, events))

	var count int
	row := sink.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events WHERE block = ?", 42)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 2, count)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	assert.Error(t, err)
}
