package athletex

import (
	"encoding/json"
	"testing"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/exchange"
	"github.com/stretchr/testify/require"
)

func TestEventEnvelopeDecode(t *testing.T) {
	line := []byte(`{"type":"sync","event":{"blockNumber":42,"timestamp":1660000000,"logAddress":"0x1111111111111111111111111111111111111111","logIndex":3,"reserve0":200000000000000000000,"reserve1":100000000}}`)

	env := &eventEnvelope{}
	require.NoError(t, json.Unmarshal(line, env))

	blockNum, err := env.blockNumber()
	require.NoError(t, err)
	require.EqualValues(t, 42, blockNum)

	event, err := env.decode()
	require.NoError(t, err)

	sync, ok := event.(*exchange.PairSyncEvent)
	require.True(t, ok)
	require.EqualValues(t, 42, sync.BlockNumber)
	require.EqualValues(t, 3, sync.LogIndex)
	require.Equal(t, "200000000000000000000", sync.Reserve0.String())
	require.Equal(t, "100000000", sync.Reserve1.String())
}

func TestEventEnvelopeDecode_UnknownType(t *testing.T) {
	env := &eventEnvelope{Type: "approval", Event: []byte(`{}`)}

	_, err := env.decode()
	require.Error(t, err)
}
