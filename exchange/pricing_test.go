package exchange

import (
	"context"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func loadTestCase(t *testing.T, storeYaml string) *TestCase {
	t.Helper()

	testCase := &TestCase{}
	err := yaml.Unmarshal([]byte(storeYaml), testCase)
	require.NoError(t, err)
	return testCase
}

func TestGetMaticPriceInUSD_USDCOnly(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x6e7a5fafcec6bb1e78bae2a1f0b612012bf14827"
      name: "WMATIC-USDC"
      token1Price: "10.00"
      reserve0: "100"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.GetMaticPriceInUSD(context.Background())
	require.NoError(t, err)

	resFloat, _ := res.Float64()
	require.InEpsilon(t, 10.00, resFloat, 0.0001)
}

func TestGetMaticPriceInUSD_USDTOnly(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x604229c960e5cacf2aaeac8be68ac07ba9df81c3"
      name: "USDT-WMATIC"
      token0Price: "5.00"
      reserve1: "50"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.GetMaticPriceInUSD(context.Background())
	require.NoError(t, err)

	resFloat, _ := res.Float64()
	require.InEpsilon(t, 5.00, resFloat, 0.0001)
}

func TestGetMaticPriceInUSD_BothPairsExist(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x6e7a5fafcec6bb1e78bae2a1f0b612012bf14827"
      name: "WMATIC-USDC"
      token1Price: "10.00"
      reserve0: "100"
  - type: pair
    entity:
      id: "0x604229c960e5cacf2aaeac8be68ac07ba9df81c3"
      name: "USDT-WMATIC"
      token0Price: "5.00"
      reserve1: "50"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.GetMaticPriceInUSD(context.Background())
	require.NoError(t, err)

	resFloat, _ := res.Float64()
	require.InEpsilon(t, 8.333333, resFloat, 0.0001)
}

func TestGetMaticPriceInUSD_BothPairsExist_ZeroLiquidity(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x6e7a5fafcec6bb1e78bae2a1f0b612012bf14827"
      name: "WMATIC-USDC"
      token1Price: "10.00"
      reserve0: "0"
  - type: pair
    entity:
      id: "0x604229c960e5cacf2aaeac8be68ac07ba9df81c3"
      name: "USDT-WMATIC"
      token0Price: "5.00"
      reserve1: "0"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.GetMaticPriceInUSD(context.Background())
	require.NoError(t, err)
	require.True(t, res.IsZero())
}

func TestGetMaticPriceInUSD_NoReferencePairs(t *testing.T) {
	sg := NewTestSubgraph(t, &TestCase{})

	res, err := sg.GetMaticPriceInUSD(context.Background())
	require.NoError(t, err)
	require.True(t, res.IsZero())
}

func TestFindMaticPerToken_WMATIC(t *testing.T) {
	sg := NewTestSubgraph(t, &TestCase{})

	res, err := sg.FindMaticPerToken(context.Background(), "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270")
	require.NoError(t, err)
	require.Equal(t, "1", res.String())
}

func TestFindMaticPerToken_ViaWhitelistPair(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x1111111111111111111111111111111111111111"
      token0: "0x2222222222222222222222222222222222222222"
      token1: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"
      reserveMATIC: "20"
      token1Price: "3"
  - type: token
    entity:
      id: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"
      symbol: "WMATIC"
      decimals: 18
      derivedMATIC: "1"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.FindMaticPerToken(context.Background(), "0x2222222222222222222222222222222222222222")
	require.NoError(t, err)
	require.Equal(t, "3", res.String())
}

func TestFindMaticPerToken_BelowLiquidityThreshold(t *testing.T) {
	testCase := loadTestCase(t, `---
storeData:
  - type: pair
    entity:
      id: "0x1111111111111111111111111111111111111111"
      token0: "0x2222222222222222222222222222222222222222"
      token1: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"
      reserveMATIC: "5"
      token1Price: "3"
  - type: token
    entity:
      id: "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270"
      symbol: "WMATIC"
      decimals: 18
      derivedMATIC: "1"
`)

	sg := NewTestSubgraph(t, testCase)

	res, err := sg.FindMaticPerToken(context.Background(), "0x2222222222222222222222222222222222222222")
	require.NoError(t, err)
	require.True(t, res.IsZero())
}

func TestGetTrackedVolumeUSD(t *testing.T) {
	sg := NewTestSubgraph(t, &TestCase{})

	bundle := NewBundle(BundleID)
	bundle.MaticPrice = decimal.NewFromInt(10)

	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	wmatic := NewToken("0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270")
	wmatic.DerivedMATIC = &one
	usdc := NewToken("0x2791bca1f2de4661ed88a30c99a7a9449aa84174")
	usdc.DerivedMATIC = &one
	other := NewToken("0x2222222222222222222222222222222222222222")
	other.DerivedMATIC = &two

	// both sides whitelisted, value is the average of the two legs
	res := sg.getTrackedVolumeUSD(bundle, decimal.NewFromInt(4), usdc, decimal.NewFromInt(6), wmatic)
	require.Equal(t, "50", res.String())

	// one side whitelisted, that side counts double
	res = sg.getTrackedVolumeUSD(bundle, decimal.NewFromInt(10), other, decimal.NewFromInt(5), wmatic)
	require.Equal(t, "100", res.String())

	res = sg.getTrackedVolumeUSD(bundle, decimal.NewFromInt(5), wmatic, decimal.NewFromInt(10), other)
	require.Equal(t, "100", res.String())

	// neither side whitelisted, the trade is untracked
	res = sg.getTrackedVolumeUSD(bundle, decimal.NewFromInt(10), other, decimal.NewFromInt(10), other)
	require.True(t, res.IsZero())
}
