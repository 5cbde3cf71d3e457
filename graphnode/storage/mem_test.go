package storage

import (
	"context"
	"testing"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	graphnode.Base
	Amount decimal.Decimal `json:"amount"`
}

func newTestRow(id string) *testRow {
	return &testRow{Base: graphnode.NewBase(id)}
}

func TestMemoryStoreLoadSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(graphnode.NewRegistry(&testRow{}))

	row := newTestRow("a")
	require.NoError(t, store.Load(ctx, row))
	assert.False(t, row.Exists())

	row.Amount = decimal.NewFromInt(5)
	require.NoError(t, store.Save(ctx, row))
	assert.True(t, row.Exists())

	loaded := newTestRow("a")
	require.NoError(t, store.Load(ctx, loaded))
	assert.True(t, loaded.Exists())
	assert.Equal(t, "5", loaded.Amount.String())

	require.NoError(t, store.Delete(ctx, loaded))
	gone := newTestRow("a")
	require.NoError(t, store.Load(ctx, gone))
	assert.False(t, gone.Exists())
}

func TestMemoryStoreLoadIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(graphnode.NewRegistry(&testRow{}))

	row := newTestRow("a")
	row.Amount = decimal.NewFromInt(5)
	require.NoError(t, store.Save(ctx, row))

	// mutating a loaded copy without saving must not leak into the store
	dirty := newTestRow("a")
	require.NoError(t, store.Load(ctx, dirty))
	dirty.Amount = decimal.NewFromInt(99)

	clean := newTestRow("a")
	require.NoError(t, store.Load(ctx, clean))
	assert.Equal(t, "5", clean.Amount.String())
}

func TestMemoryStoreLoadAllDistinct(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(graphnode.NewRegistry(&testRow{}))

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, newTestRow(id)))
	}

	rows, err := store.LoadAllDistinct(ctx, &testRow{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].GetID())
	assert.Equal(t, "b", rows[1].GetID())
	assert.Equal(t, "c", rows[2].GetID())
}
