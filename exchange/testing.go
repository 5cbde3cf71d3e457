package exchange

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode/storage"
	"github.com/stretchr/testify/require"
)

// StoreFixture is one pre-seeded row in a test case, keyed by table name.
type StoreFixture struct {
	Type   string          `json:"type"`
	Entity json.RawMessage `json:"entity"`
}

type TestCase struct {
	StoreData []StoreFixture `json:"storeData"`
}

// NewTestSubgraph seeds a memory store from the test case fixtures and
// returns an initialized subgraph over it.
func NewTestSubgraph(t *testing.T, testCase *TestCase) *Subgraph {
	t.Helper()

	ctx := context.Background()
	store := storage.NewMemoryStore(Definition)

	for _, fixture := range testCase.StoreData {
		ent, err := Definition.NewInstance(fixture.Type)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(fixture.Entity, ent))
		require.NoError(t, store.Save(ctx, ent))
	}

	sg := New(store, DefaultConfig())
	require.NoError(t, sg.Init(ctx))
	return sg
}

// ProcessEvents feeds the events through HandleEvent in order.
func ProcessEvents(t *testing.T, sg *Subgraph, events []interface{}) {
	t.Helper()

	ctx := context.Background()
	for _, event := range events {
		require.NoError(t, sg.HandleEvent(ctx, event))
	}
}
