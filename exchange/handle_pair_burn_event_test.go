package exchange

import (
	"context"
	"testing"

	"github.com/streamingfast/eth-go"
	"github.com/stretchr/testify/require"
)

func TestHandlePairBurnEvent_CompletesBurn(t *testing.T) {
	sg := NewTestSubgraph(t, loadTestCase(t, testPairFixtures))
	ctx := context.Background()

	ProcessEvents(t, sg, []interface{}{
		&PairTransferEvent{
			EventBase: testEventBase(1),
			From:      eth.MustNewAddress(testUserAddress),
			To:        eth.MustNewAddress(testPairAddress),
			Value:     bi("5000000000000000000"),
		},
		&PairTransferEvent{
			EventBase: testEventBase(2),
			From:      eth.MustNewAddress(testPairAddress),
			To:        eth.MustNewAddress(ZeroAddress),
			Value:     bi("5000000000000000000"),
		},
		&PairBurnEvent{
			EventBase: testEventBase(3),
			Sender:    eth.MustNewAddress(testUserAddress),
			To:        eth.MustNewAddress(testUserAddress),
			Amount0:   bi("3000000000000000000"),
			Amount1:   bi("6000000000000000000"),
		},
	})

	trx := NewTransaction(testTrxHash)
	require.NoError(t, sg.Load(ctx, trx))
	require.Len(t, trx.Burns, 1)

	burn := NewBurn(trx.Burns[0])
	require.NoError(t, sg.Load(ctx, burn))
	require.False(t, burn.NeedsComplete)
	require.NotNil(t, burn.Amount0)
	require.Equal(t, "3", burn.Amount0.String())
	require.NotNil(t, burn.Amount1)
	require.Equal(t, "6", burn.Amount1.String())
	require.NotNil(t, burn.LogIndex)
	require.Equal(t, uint64(3), *burn.LogIndex)

	// (2 derivedMATIC x 3) + (1 derivedMATIC x 6) = 12 MATIC, at 10 USD each
	require.NotNil(t, burn.AmountUSD)
	require.Equal(t, "120", burn.AmountUSD.String())

	factory := NewAthleteXFactory(sg.config.FactoryAddress)
	require.NoError(t, sg.Load(ctx, factory))
	require.EqualValues(t, 1, factory.TotalTransactions)
}

func TestHandlePairBurnEvent_NoTransaction(t *testing.T) {
	sg := NewTestSubgraph(t, loadTestCase(t, testPairFixtures))
	ctx := context.Background()

	ProcessEvents(t, sg, []interface{}{
		&PairBurnEvent{
			EventBase: testEventBase(1),
			Sender:    eth.MustNewAddress(testUserAddress),
			To:        eth.MustNewAddress(testUserAddress),
			Amount0:   bi("1000000000000000000"),
			Amount1:   bi("1000000000000000000"),
		},
	})

	trx := NewTransaction(testTrxHash)
	require.NoError(t, sg.Load(ctx, trx))
	require.False(t, trx.Exists())
}
