package exchange

import (
	"context"
	"testing"

	"github.com/streamingfast/eth-go"
	"github.com/stretchr/testify/require"
)

func TestHandlePairMintEvent_CompletesPendingMint(t *testing.T) {
	sg := NewTestSubgraph(t, loadTestCase(t, testPairFixtures))
	ctx := context.Background()

	ProcessEvents(t, sg, []interface{}{
		&PairTransferEvent{
			EventBase: testEventBase(1),
			From:      eth.MustNewAddress(ZeroAddress),
			To:        eth.MustNewAddress(testUserAddress),
			Value:     bi("2000000000000000000"),
		},
		&PairMintEvent{
			EventBase: testEventBase(2),
			Sender:    eth.MustNewAddress(testUserAddress),
			Amount0:   bi("1000000000000000000"),
			Amount1:   bi("2000000000000000000"),
		},
	})

	trx := NewTransaction(testTrxHash)
	require.NoError(t, sg.Load(ctx, trx))
	require.Nil(t, trx.PendingMint)
	require.Len(t, trx.Mints, 1)

	mint := NewMint(trx.Mints[0])
	require.NoError(t, sg.Load(ctx, mint))
	require.NotNil(t, mint.Sender)
	require.Equal(t, testUserAddress, *mint.Sender)
	require.NotNil(t, mint.Amount0)
	require.Equal(t, "1", mint.Amount0.String())
	require.NotNil(t, mint.Amount1)
	require.Equal(t, "2", mint.Amount1.String())
	require.NotNil(t, mint.LogIndex)
	require.Equal(t, uint64(2), *mint.LogIndex)

	// (2 derivedMATIC x 1) + (1 derivedMATIC x 2) = 4 MATIC, at 10 USD each
	require.NotNil(t, mint.AmountUSD)
	require.Equal(t, "40", mint.AmountUSD.String())
	require.Nil(t, mint.FeeTo)
	require.Nil(t, mint.FeeLiquidity)

	factory := NewAthleteXFactory(sg.config.FactoryAddress)
	require.NoError(t, sg.Load(ctx, factory))
	require.EqualValues(t, 1, factory.TotalTransactions)

	token0 := NewToken(testTokenAddress)
	require.NoError(t, sg.Load(ctx, token0))
	require.EqualValues(t, 1, token0.TotalTransactions)

	// rollups were touched for the event's day
	dayData := NewAthleteXDayData("19212")
	require.NoError(t, sg.Load(ctx, dayData))
	require.True(t, dayData.Exists())
	require.EqualValues(t, 1659916800, dayData.Date)
}

func TestHandlePairMintEvent_CompletesFoldedFeeMint(t *testing.T) {
	sg := NewTestSubgraph(t, loadTestCase(t, testPairFixtures))
	ctx := context.Background()

	// protocol fee mint, user mint, then the confirmation: the whole
	// sequence must settle into a single record carrying both amounts
	ProcessEvents(t, sg, []interface{}{
		&PairTransferEvent{
			EventBase: testEventBase(1),
			From:      eth.MustNewAddress(ZeroAddress),
			To:        eth.MustNewAddress(testUserAddress),
			Value:     bi("2000000000000000000"),
		},
		&PairTransferEvent{
			EventBase: testEventBase(2),
			From:      eth.MustNewAddress(ZeroAddress),
			To:        eth.MustNewAddress(testOtherUser),
			Value:     bi("1000000000000000000"),
		},
		&PairMintEvent{
			EventBase: testEventBase(3),
			Sender:    eth.MustNewAddress(testOtherUser),
			Amount0:   bi("1000000000000000000"),
			Amount1:   bi("2000000000000000000"),
		},
	})

	trx := NewTransaction(testTrxHash)
	require.NoError(t, sg.Load(ctx, trx))
	require.Nil(t, trx.PendingMint)
	require.Len(t, trx.Mints, 1)

	mint := NewMint(trx.Mints[0])
	require.NoError(t, sg.Load(ctx, mint))
	require.True(t, mint.Exists())
	require.Equal(t, testOtherUser, mint.To)
	require.Equal(t, "1", mint.Liquidity.String())
	require.NotNil(t, mint.FeeTo)
	require.Equal(t, testUserAddress, *mint.FeeTo)
	require.NotNil(t, mint.FeeLiquidity)
	require.Equal(t, "2", mint.FeeLiquidity.String())
	require.NotNil(t, mint.Sender)
	require.Equal(t, testOtherUser, *mint.Sender)
	require.NotNil(t, mint.LogIndex)
	require.Equal(t, uint64(3), *mint.LogIndex)

	pair := NewPair(testPairAddress)
	require.NoError(t, sg.Load(ctx, pair))
	require.Equal(t, "13", pair.TotalSupply.String())
}

func TestHandlePairMintEvent_NoTransaction(t *testing.T) {
	sg := NewTestSubgraph(t, loadTestCase(t, testPairFixtures))
	ctx := context.Background()

	// a mint confirmation with no prior transfer is dropped, not fatal
	ProcessEvents(t, sg, []interface{}{
		&PairMintEvent{
			EventBase: testEventBase(1),
			Sender:    eth.MustNewAddress(testUserAddress),
			Amount0:   bi("1000000000000000000"),
			Amount1:   bi("2000000000000000000"),
		},
	})

	trx := NewTransaction(testTrxHash)
	require.NoError(t, sg.Load(ctx, trx))
	require.False(t, trx.Exists())
}
